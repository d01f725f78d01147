package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a catalog category. The tree is two levels deep: a category
// with ParentID == nil is a top-level (parent) category, one with ParentID
// set is a subcategory.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description string
	Image       string
	IsActive    bool       `gorm:"not null;default:true"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Highlighted bool       `gorm:"not null;default:false"`
	Order       int        `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Parent *Category `gorm:"foreignKey:ParentID"`
}

// IsParent reports whether this category is eligible for hierarchical
// expansion in public queries.
func (c *Category) IsParent() bool { return c.ParentID == nil }
