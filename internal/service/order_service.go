package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/infra"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// OrderService handles checkout and back-office order management.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (dto.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	WriteReceipt(ctx context.Context, id uuid.UUID, w io.Writer) error
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// newOrderNumber generates a human-quotable order reference. Uniqueness is
// enforced by the database index; the timestamp suffix plus random component
// makes collisions vanishingly rare.
func newOrderNumber() string {
	ts := time.Now().UnixMilli() % 1000000
	return fmt.Sprintf("ORD-%06d-%03d", ts, rand.Intn(1000))
}

func mapOrder(o model.Order) dto.OrderResponse {
	templates := make([]dto.OrderTemplateRef, 0, len(o.Templates))
	for i := range o.Templates {
		t := &o.Templates[i]
		templates = append(templates, dto.OrderTemplateRef{
			ID:           t.ID,
			Title:        t.Title,
			MainImageURL: t.MainImageURL(),
			SalePrice:    t.SalePrice,
		})
	}
	return dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Templates:   templates,

		CustomerType:   o.CustomerType,
		CustomerEmail:  o.CustomerEmail,
		CustomerPhone:  o.CustomerPhone,
		WhatsappNumber: o.WhatsappNumber,

		BillingAddress: dto.BillingAddressInput{
			FullName:     o.BillingAddress.FullName,
			AddressLine1: o.BillingAddress.AddressLine1,
			AddressLine2: o.BillingAddress.AddressLine2,
			City:         o.BillingAddress.City,
			State:        o.BillingAddress.State,
			PostalCode:   o.BillingAddress.PostalCode,
			Country:      o.BillingAddress.Country,
			GSTNumber:    o.BillingAddress.GSTNumber,
		},
		AllowMarketing: o.AllowMarketing,

		TotalAmount:    o.TotalAmount,
		DiscountAmount: o.DiscountAmount,
		FinalAmount:    o.FinalAmount,

		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		TransactionID: o.TransactionID,

		DeliveryStatus:        o.DeliveryStatus,
		CustomizationRequired: o.CustomizationRequired,
		DeliveryFileURL:       o.DeliveryFileURL,

		Status:  o.Status,
		Remarks: o.Remarks,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error) {
	switch req.CustomerType {
	case "Email":
		if strings.TrimSpace(req.CustomerEmail) == "" {
			return dto.CreateOrderResponse{}, Invalid("Customer email is required")
		}
	case "Phone":
		if strings.TrimSpace(req.CustomerPhone) == "" {
			return dto.CreateOrderResponse{}, Invalid("Customer phone is required")
		}
	}

	ids := make([]uuid.UUID, 0, len(req.Templates))
	for _, v := range req.Templates {
		id, err := uuid.Parse(v)
		if err != nil {
			return dto.CreateOrderResponse{}, Invalid("Invalid template id")
		}
		ids = append(ids, id)
	}
	templates, err := s.orders.FindTemplates(ctx, ids)
	if err != nil {
		return dto.CreateOrderResponse{}, err
	}
	if len(templates) != len(ids) {
		return dto.CreateOrderResponse{}, Invalid("One or more templates do not exist")
	}

	allowMarketing := true
	if req.AllowMarketing != nil {
		allowMarketing = *req.AllowMarketing
	}

	o := &model.Order{
		OrderNumber: newOrderNumber(),
		Templates:   templates,

		CustomerType:   req.CustomerType,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		WhatsappNumber: req.WhatsappNumber,

		BillingAddress: model.BillingAddress{
			FullName:     req.BillingAddress.FullName,
			AddressLine1: req.BillingAddress.AddressLine1,
			AddressLine2: req.BillingAddress.AddressLine2,
			City:         req.BillingAddress.City,
			State:        req.BillingAddress.State,
			PostalCode:   req.BillingAddress.PostalCode,
			Country:      req.BillingAddress.Country,
			GSTNumber:    req.BillingAddress.GSTNumber,
		},
		AllowMarketing: allowMarketing,

		TotalAmount:    req.TotalAmount,
		DiscountAmount: req.DiscountAmount,
		FinalAmount:    req.FinalAmount,

		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,

		DeliveryStatus:        req.DeliveryStatus,
		CustomizationRequired: req.CustomizationRequired,

		Status:  req.Status,
		Remarks: req.Remarks,
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = model.PaymentPending
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = "Razorpay"
	}
	if o.DeliveryStatus == "" {
		o.DeliveryStatus = model.DeliveryNotStarted
	}
	if o.Status == "" {
		o.Status = model.OrderPending
	}
	if req.UserID != nil && *req.UserID != "" {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return dto.CreateOrderResponse{}, Invalid("Invalid user id")
		}
		o.UserID = &userID
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return dto.CreateOrderResponse{}, err
	}
	return dto.CreateOrderResponse{
		Success: true,
		Message: "Order placed successfully",
		Order:   mapOrder(*o),
	}, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (dto.OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrderResponse{}, NotFound("Order not found")
		}
		return dto.OrderResponse{}, err
	}
	return mapOrder(*o), nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	return out, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (dto.OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.OrderResponse{}, NotFound("Order not found")
		}
		return dto.OrderResponse{}, err
	}

	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		o.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentMethod != nil {
		o.PaymentMethod = *req.PaymentMethod
	}
	if req.TransactionID != nil {
		o.TransactionID = *req.TransactionID
	}
	if req.DeliveryStatus != nil {
		o.DeliveryStatus = *req.DeliveryStatus
	}
	if req.CustomizationRequired != nil {
		o.CustomizationRequired = *req.CustomizationRequired
	}
	if req.DeliveryFileURL != nil {
		o.DeliveryFileURL = *req.DeliveryFileURL
	}
	if req.Remarks != nil {
		o.Remarks = *req.Remarks
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return dto.OrderResponse{}, err
	}
	return mapOrder(*o), nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Order not found")
		}
		return err
	}
	return s.orders.Delete(ctx, id)
}

func (s *orderService) WriteReceipt(ctx context.Context, id uuid.UUID, w io.Writer) error {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Order not found")
		}
		return err
	}
	return infra.WriteOrderReceipt(o, w)
}
