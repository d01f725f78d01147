package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/slug"
)

// TemplateService is the back-office side of the catalog: full CRUD over
// templates regardless of status.
type TemplateService interface {
	Create(ctx context.Context, req dto.CreateTemplateRequest, createdBy *uuid.UUID) (dto.TemplateResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.TemplateResponse, error)
	List(ctx context.Context, filter dto.TemplateAdminFilter) (dto.TemplateAdminListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (dto.TemplateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateService struct {
	templates  repository.TemplateRepository
	categories repository.CategoryRepository
	cleaner    AssetCleaner
}

func NewTemplateService(templates repository.TemplateRepository, categories repository.CategoryRepository, cleaner AssetCleaner) TemplateService {
	return &templateService{templates: templates, categories: categories, cleaner: cleaner}
}

// computeDiscount derives the discount percentage from the offer and sale
// prices, rounded to the nearest whole percent. Zero when the prices do not
// describe a markdown.
func computeDiscount(offer, sale decimal.Decimal) int {
	if offer.LessThanOrEqual(decimal.Zero) || sale.LessThanOrEqual(decimal.Zero) || sale.GreaterThanOrEqual(offer) {
		return 0
	}
	pct := offer.Sub(sale).Div(offer).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}

func (s *templateService) resolveCategories(ctx context.Context, raw []string) ([]model.Category, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, Invalid("Invalid category id")
		}
		ids = append(ids, id)
	}
	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, Invalid("One or more categories do not exist")
	}
	return categories, nil
}

func toModelImages(in []dto.ImageInput) []model.TemplateImage {
	images := make([]model.TemplateImage, 0, len(in))
	for _, img := range in {
		images = append(images, model.TemplateImage{URL: img.URL, IsMain: img.IsMain})
	}
	return images
}

func (s *templateService) Create(ctx context.Context, req dto.CreateTemplateRequest, createdBy *uuid.UUID) (dto.TemplateResponse, error) {
	exists, err := s.templates.ExistsTemplateID(ctx, req.TemplateID, uuid.Nil)
	if err != nil {
		return dto.TemplateResponse{}, err
	}
	if exists {
		return dto.TemplateResponse{}, Conflict("Template ID already exists. Use a different one.")
	}

	categories, err := s.resolveCategories(ctx, req.Categories)
	if err != nil {
		return dto.TemplateResponse{}, err
	}

	t := &model.Template{
		TemplateID:  req.TemplateID,
		Title:       req.Title,
		Slug:        slug.Generate(req.Title),
		Description: req.Description,
		Status:      req.Status,

		Categories: categories,
		Images:     toModelImages(req.Images),

		OfferPrice: req.OfferPrice,
		SalePrice:  req.SalePrice,

		ProductTypes:  req.ProductTypes,
		Dimension:     req.Dimension,
		StyleTags:     req.StyleTags,
		ColorTags:     req.ColorTags,
		EditableLevel: req.EditableLevel,
		Languages:     req.Languages,

		IncludeMapQR:     req.IncludeMapQR,
		PhysicalDelivery: req.PhysicalDelivery,
		MarkHighlighted:  req.MarkHighlighted,
		DeliveryPrice:    req.DeliveryPrice,

		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		OGImage:         req.OGImage,

		CreatedBy: createdBy,
	}
	if t.Status == "" {
		t.Status = model.StatusActive
	}
	if t.Dimension == "" {
		t.Dimension = "2D"
	}
	if t.EditableLevel == "" {
		t.EditableLevel = model.EditableBasic
	}
	if req.Discount != nil {
		t.Discount = *req.Discount
	} else {
		t.Discount = computeDiscount(t.OfferPrice, t.SalePrice)
	}

	if err := s.templates.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TemplateResponse{}, Conflict("Template ID already exists. Use a different one.")
		}
		return dto.TemplateResponse{}, err
	}
	return mapTemplate(*t), nil
}

func (s *templateService) Get(ctx context.Context, id uuid.UUID) (dto.TemplateResponse, error) {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TemplateResponse{}, NotFound("Template not found")
		}
		return dto.TemplateResponse{}, err
	}
	return mapTemplate(*t), nil
}

func (s *templateService) List(ctx context.Context, filter dto.TemplateAdminFilter) (dto.TemplateAdminListResponse, error) {
	templates, total, err := s.templates.ListAdmin(ctx, filter)
	if err != nil {
		return dto.TemplateAdminListResponse{}, err
	}
	return dto.TemplateAdminListResponse{
		Success:     true,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		CurrentPage: filter.Page,
		Templates:   mapTemplates(templates),
	}, nil
}

func (s *templateService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (dto.TemplateResponse, error) {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TemplateResponse{}, NotFound("Template not found")
		}
		return dto.TemplateResponse{}, err
	}

	if req.TemplateID != nil && *req.TemplateID != t.TemplateID {
		exists, err := s.templates.ExistsTemplateID(ctx, *req.TemplateID, id)
		if err != nil {
			return dto.TemplateResponse{}, err
		}
		if exists {
			return dto.TemplateResponse{}, Conflict("Template ID already exists. Use a different one.")
		}
		t.TemplateID = *req.TemplateID
	}

	// Slug follows the title and is recomputed only when the title changes.
	if req.Title != nil && *req.Title != t.Title {
		t.Title = *req.Title
		t.Slug = slug.Generate(*req.Title)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil && *req.Status != "" {
		t.Status = *req.Status
	}

	if req.Images != nil {
		// Gallery replacement retires the object-store assets that are no
		// longer referenced.
		next := toModelImages(*req.Images)
		kept := make(map[string]struct{}, len(next))
		for _, img := range next {
			kept[img.URL] = struct{}{}
		}
		var orphaned []string
		for _, img := range t.Images {
			if _, ok := kept[img.URL]; !ok {
				orphaned = append(orphaned, img.URL)
			}
		}
		if len(orphaned) > 0 {
			s.cleaner.EnqueueDelete(ctx, orphaned...)
		}
		t.Images = next
	}

	// Prices are coerced on every update and the discount re-derived, unless
	// the request pins an explicit discount.
	t.OfferPrice = req.OfferPrice
	t.SalePrice = req.SalePrice
	t.DeliveryPrice = req.DeliveryPrice
	if req.Discount != nil {
		t.Discount = *req.Discount
	} else {
		t.Discount = computeDiscount(t.OfferPrice, t.SalePrice)
	}

	if req.ProductTypes != nil {
		t.ProductTypes = *req.ProductTypes
	}
	if req.Dimension != nil && *req.Dimension != "" {
		t.Dimension = *req.Dimension
	}
	if req.StyleTags != nil {
		t.StyleTags = *req.StyleTags
	}
	if req.ColorTags != nil {
		t.ColorTags = *req.ColorTags
	}
	if req.EditableLevel != nil {
		if *req.EditableLevel == "" {
			t.EditableLevel = model.EditableBasic
		} else {
			t.EditableLevel = *req.EditableLevel
		}
	}
	if req.Languages != nil {
		t.Languages = *req.Languages
	}

	if req.IncludeMapQR != nil {
		t.IncludeMapQR = *req.IncludeMapQR
	}
	if req.PhysicalDelivery != nil {
		t.PhysicalDelivery = *req.PhysicalDelivery
	}
	if req.MarkHighlighted != nil {
		t.MarkHighlighted = *req.MarkHighlighted
	}

	if req.MetaTitle != nil {
		t.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		t.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		t.MetaKeywords = *req.MetaKeywords
	}
	if req.OGImage != nil {
		t.OGImage = *req.OGImage
	}

	if req.Categories != nil {
		categories, err := s.resolveCategories(ctx, *req.Categories)
		if err != nil {
			return dto.TemplateResponse{}, err
		}
		if err := s.templates.ReplaceCategories(ctx, t, categories); err != nil {
			return dto.TemplateResponse{}, err
		}
		t.Categories = categories
	}

	if err := s.templates.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TemplateResponse{}, Conflict("Template ID already exists. Use a different one.")
		}
		return dto.TemplateResponse{}, err
	}
	return mapTemplate(*t), nil
}

func (s *templateService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Template not found")
		}
		return err
	}

	if err := s.templates.Delete(ctx, id); err != nil {
		return err
	}

	// Image cleanup is best effort and happens after the record is gone.
	urls := make([]string, 0, len(t.Images))
	for _, img := range t.Images {
		urls = append(urls, img.URL)
	}
	if len(urls) > 0 {
		s.cleaner.EnqueueDelete(ctx, urls...)
	}
	return nil
}
