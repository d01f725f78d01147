package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type BillingAddressInput struct {
	FullName     string `json:"fullName"     validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"         validate:"required"`
	State        string `json:"state"        validate:"required"`
	PostalCode   string `json:"postalCode"   validate:"required"`
	Country      string `json:"country"`
	GSTNumber    string `json:"gstNumber"`
}

type CreateOrderRequest struct {
	Templates      []string            `json:"templates"      validate:"required,min=1,dive,uuid"`
	CustomerType   string              `json:"customerType"   validate:"required,oneof=Email Phone"`
	CustomerEmail  string              `json:"customerEmail"  validate:"omitempty,email"`
	CustomerPhone  string              `json:"customerPhone"`
	WhatsappNumber string              `json:"whatsappNumber"`
	BillingAddress BillingAddressInput `json:"billingAddress" validate:"required"`
	// AllowMarketing defaults to true when omitted (checkout checkbox is
	// pre-ticked).
	AllowMarketing *bool `json:"allowMarketing"`

	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`

	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=Razorpay Paytm Cash Other"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=Pending Paid Failed Refunded"`
	TransactionID string `json:"transactionId"`

	CustomizationRequired bool   `json:"customizationRequired"`
	DeliveryStatus        string `json:"deliveryStatus" validate:"omitempty,oneof='Not Started' 'In Progress' Delivered Cancelled"`
	Status                string `json:"status"         validate:"omitempty,oneof=Pending Processing Completed Cancelled"`
	Remarks               string `json:"remarks"`
	UserID                *string `json:"userId" validate:"omitempty,uuid"`
}

type UpdateOrderRequest struct {
	Status                *string `json:"status"         validate:"omitempty,oneof=Pending Processing Completed Cancelled"`
	PaymentStatus         *string `json:"paymentStatus"  validate:"omitempty,oneof=Pending Paid Failed Refunded"`
	PaymentMethod         *string `json:"paymentMethod"  validate:"omitempty,oneof=Razorpay Paytm Cash Other"`
	TransactionID         *string `json:"transactionId"`
	DeliveryStatus        *string `json:"deliveryStatus" validate:"omitempty,oneof='Not Started' 'In Progress' Delivered Cancelled"`
	CustomizationRequired *bool   `json:"customizationRequired"`
	DeliveryFileURL       *string `json:"deliveryFileUrl"`
	Remarks               *string `json:"remarks"`
}

// ── Filter ────────────────────────────────────────────────────────────────────

type OrderFilter struct {
	Status         string `form:"status"`
	PaymentStatus  string `form:"paymentStatus"`
	DeliveryStatus string `form:"deliveryStatus"`
	Search         string `form:"search"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// OrderTemplateRef is the template subset embedded in order responses.
type OrderTemplateRef struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	MainImageURL string          `json:"mainImageUrl,omitempty"`
	SalePrice    decimal.Decimal `json:"salePrice"`
}

type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"orderNumber"`

	Templates []OrderTemplateRef `json:"templates"`

	CustomerType   string `json:"customerType"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`

	BillingAddress BillingAddressInput `json:"billingAddress"`
	AllowMarketing bool                `json:"allowMarketing"`

	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`

	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId,omitempty"`

	DeliveryStatus        string `json:"deliveryStatus"`
	CustomizationRequired bool   `json:"customizationRequired"`
	DeliveryFileURL       string `json:"deliveryFileUrl,omitempty"`

	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateOrderResponse is returned by the checkout endpoint.
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
