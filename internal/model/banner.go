package model

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a homepage hero banner. Background is an object-store URL.
type Banner struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"not null"`
	Subtitle   string
	Desc       string
	CTA        string
	Link       string
	Background string `gorm:"not null"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
