package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// BannerService manages homepage hero banners.
type BannerService interface {
	Create(ctx context.Context, req dto.CreateBannerRequest, backgroundURL string) (dto.BannerResponse, error)
	ListActive(ctx context.Context) ([]dto.BannerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerService struct {
	repo    repository.BannerRepository
	cleaner AssetCleaner
}

func NewBannerService(repo repository.BannerRepository, cleaner AssetCleaner) BannerService {
	return &bannerService{repo: repo, cleaner: cleaner}
}

func mapBanner(b model.Banner) dto.BannerResponse {
	return dto.BannerResponse{
		ID:         b.ID,
		Title:      b.Title,
		Subtitle:   b.Subtitle,
		Desc:       b.Desc,
		CTA:        b.CTA,
		Link:       b.Link,
		Background: b.Background,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
	}
}

func (s *bannerService) Create(ctx context.Context, req dto.CreateBannerRequest, backgroundURL string) (dto.BannerResponse, error) {
	if backgroundURL == "" {
		return dto.BannerResponse{}, Invalid("Background image is required")
	}
	b := &model.Banner{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Desc:       req.Desc,
		CTA:        req.CTA,
		Link:       req.Link,
		Background: backgroundURL,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return dto.BannerResponse{}, err
	}
	return mapBanner(*b), nil
}

func (s *bannerService) ListActive(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, mapBanner(b))
	}
	return out, nil
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Banner not found")
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if b.Background != "" {
		s.cleaner.EnqueueDelete(ctx, b.Background)
	}
	return nil
}
