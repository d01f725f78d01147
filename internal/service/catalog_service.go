package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/catalog"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// CatalogService is the public, read-only view of the template catalog. It
// resolves category references, composes filter predicates, and enforces the
// Active-status gate on every path.
type CatalogService interface {
	List(ctx context.Context, f catalog.Filter) (dto.PublicTemplateListResponse, error)
	Search(ctx context.Context, q string, limit int) (dto.PublicTemplateListResponse, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (dto.PublicTemplateResponse, error)
}

type catalogService struct {
	templates  repository.TemplateRepository
	categories repository.CategoryRepository
}

func NewCatalogService(templates repository.TemplateRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{templates: templates, categories: categories}
}

func mapTemplate(t model.Template) dto.TemplateResponse {
	categories := make([]dto.CategoryRef, 0, len(t.Categories))
	for _, c := range t.Categories {
		categories = append(categories, dto.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	images := make([]dto.TemplateImageResponse, 0, len(t.Images))
	for _, img := range t.Images {
		images = append(images, dto.TemplateImageResponse{URL: img.URL, IsMain: img.IsMain})
	}
	return dto.TemplateResponse{
		ID:          t.ID,
		TemplateID:  t.TemplateID,
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Status:      t.Status,

		Categories:   categories,
		Images:       images,
		MainImageURL: t.MainImageURL(),

		OfferPrice: t.OfferPrice,
		SalePrice:  t.SalePrice,
		Discount:   t.Discount,

		ProductTypes:  t.ProductTypes,
		Dimension:     t.Dimension,
		StyleTags:     t.StyleTags,
		ColorTags:     t.ColorTags,
		EditableLevel: t.EditableLevel,
		Languages:     t.Languages,

		IncludeMapQR:     t.IncludeMapQR,
		PhysicalDelivery: t.PhysicalDelivery,
		MarkHighlighted:  t.MarkHighlighted,
		DeliveryPrice:    t.DeliveryPrice,

		MetaTitle:       t.MetaTitle,
		MetaDescription: t.MetaDescription,
		MetaKeywords:    t.MetaKeywords,
		OGImage:         t.OGImage,

		TotalViews:     t.TotalViews,
		TotalDownloads: t.TotalDownloads,

		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func mapTemplates(list []model.Template) []dto.TemplateResponse {
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, mapTemplate(t))
	}
	return out
}

// resolveCategoryIDs turns a category slug or name reference into the
// identifier set the predicate filters on. A parent category expands to its
// children plus itself; a child stands alone. An unknown reference yields an
// empty set, which leaves the query unfiltered by category.
func (s *catalogService) resolveCategoryIDs(ctx context.Context, f catalog.Filter) ([]uuid.UUID, error) {
	ref := strings.TrimSpace(f.CategorySlug)
	if ref == "" {
		ref = strings.TrimSpace(f.CategoryName)
	}
	if ref == "" {
		return nil, nil
	}

	c, err := s.categories.FindBySlugOrName(ctx, ref, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ids := []uuid.UUID{c.ID}
	if c.IsParent() {
		children, err := s.categories.FindChildren(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			ids = append(ids, child.ID)
		}
	}
	return ids, nil
}

func (s *catalogService) List(ctx context.Context, f catalog.Filter) (dto.PublicTemplateListResponse, error) {
	categoryIDs, err := s.resolveCategoryIDs(ctx, f)
	if err != nil {
		return dto.PublicTemplateListResponse{}, err
	}

	p := catalog.BuildPredicate(f, categoryIDs)
	page, limit := f.Pagination()

	templates, err := s.templates.ListPublic(ctx, p, catalog.SortClause(f.Sort), page, limit)
	if err != nil {
		return dto.PublicTemplateListResponse{}, err
	}

	mapped := mapTemplates(templates)
	return dto.PublicTemplateListResponse{
		Success:   true,
		Count:     len(mapped),
		Templates: mapped,
	}, nil
}

// DefaultSearchLimit bounds a search request that does not name its own limit.
const DefaultSearchLimit = 30

func (s *catalogService) Search(ctx context.Context, q string, limit int) (dto.PublicTemplateListResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		// An empty query never reaches the store.
		return dto.PublicTemplateListResponse{
			Success:   true,
			Count:     0,
			Templates: []dto.TemplateResponse{},
		}, nil
	}

	if limit < 1 {
		limit = DefaultSearchLimit
	}
	if limit > catalog.MaxSearchLimit {
		limit = catalog.MaxSearchLimit
	}

	p := catalog.BuildSearchPredicate(q)
	templates, err := s.templates.ListPublic(ctx, p, catalog.SortClause(""), 1, limit)
	if err != nil {
		return dto.PublicTemplateListResponse{}, err
	}

	mapped := mapTemplates(templates)
	return dto.PublicTemplateListResponse{
		Success:   true,
		Count:     len(mapped),
		Templates: mapped,
	}, nil
}

func (s *catalogService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (dto.PublicTemplateResponse, error) {
	var (
		t   *model.Template
		err error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		t, err = s.templates.FindByID(ctx, id)
	} else {
		t, err = s.templates.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PublicTemplateResponse{}, NotFound("Template not found or inactive")
		}
		return dto.PublicTemplateResponse{}, err
	}
	// Inactive records are indistinguishable from absent ones on the public
	// surface.
	if t.Status != model.StatusActive {
		return dto.PublicTemplateResponse{}, NotFound("Template not found or inactive")
	}
	return dto.PublicTemplateResponse{Success: true, Template: mapTemplate(*t)}, nil
}
