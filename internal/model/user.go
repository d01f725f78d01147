package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Only admins can access the management endpoints.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is an account. Admin accounts gate the management API; customer
// accounts only exist as order references.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:'customer'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
