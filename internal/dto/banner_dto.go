package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CreateBannerRequest is bound from the multipart form that also carries the
// background image file.
type CreateBannerRequest struct {
	Title    string `form:"title" validate:"required,max=200"`
	Subtitle string `form:"subtitle"`
	Desc     string `form:"desc"`
	CTA      string `form:"cta"`
	Link     string `form:"link"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type BannerResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Desc       string    `json:"desc,omitempty"`
	CTA        string    `json:"cta,omitempty"`
	Link       string    `json:"link,omitempty"`
	Background string    `json:"bg"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
