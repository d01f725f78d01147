package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type ImageInput struct {
	URL    string `json:"url"    validate:"required,url"`
	IsMain bool   `json:"isMain"`
}

type CreateTemplateRequest struct {
	TemplateID  string       `json:"templateId"  validate:"required,max=64"`
	Title       string       `json:"title"       validate:"required,max=200"`
	Description string       `json:"description"`
	Status      string       `json:"status"      validate:"omitempty,oneof=Active Inactive"`
	Categories  []string     `json:"categories"  validate:"dive,uuid"`
	Images      []ImageInput `json:"images"      validate:"required,min=1,dive"`

	OfferPrice decimal.Decimal `json:"offerPrice"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	// Discount overrides the computed percentage when supplied.
	Discount *int `json:"discount" validate:"omitempty,min=0,max=100"`

	ProductTypes  []string `json:"productType"`
	Dimension     string   `json:"dimension"      validate:"omitempty,oneof=2D 3D"`
	StyleTags     []string `json:"style_tags"`
	ColorTags     []string `json:"color_tags"`
	EditableLevel string   `json:"editable_level" validate:"omitempty,oneof=Basic Moderate 'Fully Editable'"`
	Languages     []string `json:"language"`

	IncludeMapQR     bool            `json:"includeMapQR"`
	PhysicalDelivery bool            `json:"physicalDelivery"`
	MarkHighlighted  bool            `json:"markHighlighted"`
	DeliveryPrice    decimal.Decimal `json:"deliveryPrice"`

	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
	OGImage         string `json:"ogImage"`
}

// UpdateTemplateRequest is a full-field replace where omitted fields keep
// their stored values — except the pricing fields, which are always coerced
// to numbers (an omitted price becomes zero and the discount is recomputed).
type UpdateTemplateRequest struct {
	TemplateID  *string       `json:"templateId"  validate:"omitempty,max=64"`
	Title       *string       `json:"title"       validate:"omitempty,max=200"`
	Description *string       `json:"description"`
	Status      *string       `json:"status"      validate:"omitempty,oneof=Active Inactive"`
	Categories  *[]string     `json:"categories"  validate:"omitempty,dive,uuid"`
	Images      *[]ImageInput `json:"images"      validate:"omitempty,min=1,dive"`

	OfferPrice decimal.Decimal `json:"offerPrice"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	Discount   *int            `json:"discount" validate:"omitempty,min=0,max=100"`

	ProductTypes  *[]string `json:"productType"`
	Dimension     *string   `json:"dimension"      validate:"omitempty,oneof=2D 3D"`
	StyleTags     *[]string `json:"style_tags"`
	ColorTags     *[]string `json:"color_tags"`
	EditableLevel *string   `json:"editable_level" validate:"omitempty,oneof=Basic Moderate 'Fully Editable'"`
	Languages     *[]string `json:"language"`

	IncludeMapQR     *bool           `json:"includeMapQR"`
	PhysicalDelivery *bool           `json:"physicalDelivery"`
	MarkHighlighted  *bool           `json:"markHighlighted"`
	DeliveryPrice    decimal.Decimal `json:"deliveryPrice"`

	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	MetaKeywords    *string `json:"metaKeywords"`
	OGImage         *string `json:"ogImage"`
}

// ── Filter / Pagination ───────────────────────────────────────────────────────

// TemplateAdminFilter drives the back-office listing.
type TemplateAdminFilter struct {
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=10" validate:"min=1,max=100"`
	TemplateID string `form:"templateId"`
	Title      string `form:"title"`
	Category   string `form:"category"   validate:"omitempty,uuid"`
	Status     string `form:"status"     validate:"omitempty,oneof=Active Inactive"`
	SortField  string `form:"sortField,default=createdAt"`
	SortOrder  string `form:"sortOrder,default=desc"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type TemplateImageResponse struct {
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type TemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  string    `json:"templateId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Status      string    `json:"status"`

	Categories []CategoryRef           `json:"categories"`
	Images     []TemplateImageResponse `json:"images"`
	// MainImageURL is the representative image: the first one flagged main,
	// else the first image, else absent.
	MainImageURL string `json:"mainImageUrl,omitempty"`

	OfferPrice decimal.Decimal `json:"offerPrice"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	Discount   int             `json:"discount"`

	ProductTypes  []string `json:"productType"`
	Dimension     string   `json:"dimension"`
	StyleTags     []string `json:"style_tags"`
	ColorTags     []string `json:"color_tags"`
	EditableLevel string   `json:"editable_level"`
	Languages     []string `json:"language"`

	IncludeMapQR     bool            `json:"includeMapQR"`
	PhysicalDelivery bool            `json:"physicalDelivery"`
	MarkHighlighted  bool            `json:"markHighlighted"`
	DeliveryPrice    decimal.Decimal `json:"deliveryPrice"`

	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	MetaKeywords    string `json:"metaKeywords,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`

	TotalViews     int `json:"totalViews"`
	TotalDownloads int `json:"totalDownloads"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicTemplateListResponse is the envelope of the public filter and search
// endpoints.
type PublicTemplateListResponse struct {
	Success   bool               `json:"success"`
	Count     int                `json:"count"`
	Templates []TemplateResponse `json:"templates"`
}

// PublicTemplateResponse is the envelope of the public single-item lookup.
type PublicTemplateResponse struct {
	Success  bool             `json:"success"`
	Template TemplateResponse `json:"template"`
}

// TemplateAdminListResponse is the back-office listing envelope.
type TemplateAdminListResponse struct {
	Success     bool               `json:"success"`
	Total       int64              `json:"total"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Templates   []TemplateResponse `json:"templates"`
}
