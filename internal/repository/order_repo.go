package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/catalog"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

// OrderRepository defines the data access contract for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindTemplates(ctx context.Context, ids []uuid.UUID) ([]model.Template, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Templates").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, error) {
	var orders []model.Order

	q := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" {
		q = q.Where("LOWER(status) = LOWER(?)", filter.Status)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("LOWER(payment_status) = LOWER(?)", filter.PaymentStatus)
	}
	if filter.DeliveryStatus != "" {
		q = q.Where("LOWER(delivery_status) = LOWER(?)", filter.DeliveryStatus)
	}
	if search := filter.Search; search != "" {
		pattern := "%" + catalog.EscapeLike(search) + "%"
		q = q.Where(
			"order_number ILIKE ? OR customer_email ILIKE ? OR customer_phone ILIKE ? OR billing_address ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	err := q.Preload("Templates").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Templates").Delete(&model.Order{ID: id}).Error
}

// FindTemplates loads the template records referenced by a checkout request.
func (r *orderRepo) FindTemplates(ctx context.Context, ids []uuid.UUID) ([]model.Template, error) {
	var templates []model.Template
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&templates).Error
	return templates, err
}
