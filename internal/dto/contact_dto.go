package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateContactRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Whatsapp  string `json:"whatsapp"  validate:"required,max=20"`
	QueryType string `json:"queryType" validate:"required,max=100"`
	Message   string `json:"message"   validate:"required,max=2000"`
}

type UpdateContactRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=Pending Solved"`
	Remark *string `json:"remark"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Whatsapp  string    `json:"whatsapp"`
	QueryType string    `json:"queryType"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Remark    string    `json:"remark,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
