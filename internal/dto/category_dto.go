package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ParentID    *string `json:"parentCategory" validate:"omitempty,uuid"`
	Highlighted bool    `json:"highlighted"`
	Order       int     `json:"order"`
}

// UpdateCategoryRequest uses pointers throughout: an omitted field keeps its
// stored value. For the booleans this is the difference between "not
// provided" and "explicitly false". An explicit empty ParentID clears the
// parent (promotes the category to top level).
type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
	ParentID    *string `json:"parentCategory" validate:"omitempty,uuid"`
	Highlighted *bool   `json:"highlighted"`
	Order       *int    `json:"order"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	IsActive    bool       `json:"isActive"`
	ParentID    *uuid.UUID `json:"parentCategory"`
	Highlighted bool       `json:"highlighted"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CategoryRef is the embedded category subset attached to template responses.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
