package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact query statuses.
const (
	ContactPending = "Pending"
	ContactSolved  = "Solved"
)

// Contact is a customer query submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Whatsapp  string    `gorm:"not null"`
	QueryType string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:'Pending'"`
	Remark    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
