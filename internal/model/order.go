package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lifecycle enums. The zero-value defaults mirror what the checkout
// flow sends for a freshly placed order.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderCompleted  = "Completed"
	OrderCancelled  = "Cancelled"

	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"

	DeliveryNotStarted = "Not Started"
	DeliveryInProgress = "In Progress"
	DeliveryDelivered  = "Delivered"
	DeliveryCancelled  = "Cancelled"
)

// BillingAddress is embedded in the order record as JSON.
type BillingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	GSTNumber    string `json:"gstNumber,omitempty"`
}

// Order is a purchase of one or more templates.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string    `gorm:"uniqueIndex;not null"`

	Templates []Template `gorm:"many2many:order_templates"`

	CustomerType   string `gorm:"not null"` // Email | Phone
	CustomerEmail  string
	CustomerPhone  string
	WhatsappNumber string

	BillingAddress BillingAddress `gorm:"type:text;serializer:json"`
	AllowMarketing bool           `gorm:"not null;default:true"`

	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FinalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	PaymentStatus string `gorm:"not null;default:'Pending'"`
	PaymentMethod string `gorm:"not null;default:'Razorpay'"`
	TransactionID string

	DeliveryStatus        string `gorm:"not null;default:'Not Started'"`
	CustomizationRequired bool   `gorm:"not null;default:false"`
	DeliveryFileURL       string

	Status  string `gorm:"not null;default:'Pending'"`
	Remarks string

	UserID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
