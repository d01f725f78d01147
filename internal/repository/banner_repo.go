package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

// BannerRepository defines the data access contract for homepage banners.
type BannerRepository interface {
	Create(ctx context.Context, b *model.Banner) error
	ListActive(ctx context.Context) ([]model.Banner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepo struct{ db *gorm.DB }

func NewBannerRepository(db *gorm.DB) BannerRepository { return &bannerRepo{db: db} }

func (r *bannerRepo) Create(ctx context.Context, b *model.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bannerRepo) ListActive(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).Where("is_active = true").Order("created_at DESC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Banner, error) {
	var b model.Banner
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, "id = ?", id).Error
}
