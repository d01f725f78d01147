package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Template statuses. Only active templates are visible to the public catalog.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Editable levels, from least to most customizable.
const (
	EditableBasic    = "Basic"
	EditableModerate = "Moderate"
	EditableFull     = "Fully Editable"
)

// TemplateImage is one entry of a template's image gallery. IsMain marks the
// representative image used in listings.
type TemplateImage struct {
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

// Template is a catalog item (an invitation design sold in the store).
type Template struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateID string    `gorm:"uniqueIndex;not null"` // admin-assigned external identifier
	Title      string    `gorm:"not null"`
	Slug       string    `gorm:"uniqueIndex;not null"` // derived from Title
	Description string
	Status      string `gorm:"not null;default:'Active'"`

	Categories []Category      `gorm:"many2many:template_categories"`
	Images     []TemplateImage `gorm:"type:text;serializer:json"`

	OfferPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;index"`
	Discount   int             `gorm:"not null;default:0"`

	ProductTypes  pq.StringArray `gorm:"type:text[]"`
	Dimension     string         `gorm:"not null;default:'2D'"` // 2D | 3D
	StyleTags     pq.StringArray `gorm:"type:text[]"`
	ColorTags     pq.StringArray `gorm:"type:text[]"`
	EditableLevel string         `gorm:"not null;default:'Basic'"`
	Languages     pq.StringArray `gorm:"type:text[]"`

	IncludeMapQR     bool            `gorm:"not null;default:false"`
	PhysicalDelivery bool            `gorm:"not null;default:false"`
	MarkHighlighted  bool            `gorm:"not null;default:false"`
	DeliveryPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	OGImage         string

	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	TotalViews     int        `gorm:"not null;default:0"`
	TotalDownloads int        `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// MainImageURL returns the URL of the image flagged as main, falling back to
// the first image. Empty when the template has no images.
func (t *Template) MainImageURL() string {
	for _, img := range t.Images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(t.Images) > 0 {
		return t.Images[0].URL
	}
	return ""
}
