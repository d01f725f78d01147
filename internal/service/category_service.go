package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/slug"
)

// CategoryService enforces the category lifecycle invariants: slug
// uniqueness, parent/child deletion safety, and best-effort image cleanup.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo    repository.CategoryRepository
	cleaner AssetCleaner
}

func NewCategoryService(repo repository.CategoryRepository, cleaner AssetCleaner) CategoryService {
	return &categoryService{repo: repo, cleaner: cleaner}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		IsActive:    c.IsActive,
		ParentID:    c.ParentID,
		Highlighted: c.Highlighted,
		Order:       c.Order,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	computed := slug.Generate(req.Name)
	if computed == "" {
		return dto.CategoryResponse{}, Invalid("Category name is required")
	}

	existing, err := s.repo.FindBySlug(ctx, computed)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}
	if err == nil && existing != nil {
		return dto.CategoryResponse{}, Conflict("Category already exists")
	}

	c := &model.Category{
		Name:        req.Name,
		Slug:        computed,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
		Highlighted: req.Highlighted,
		Order:       req.Order,
	}
	if req.ParentID != nil && *req.ParentID != "" {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return dto.CategoryResponse{}, Invalid("Invalid parent category id")
		}
		c.ParentID = &parentID
	}

	if err := s.repo.Create(ctx, c); err != nil {
		// The unique index is the final arbiter when two creates race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, Conflict("Category already exists")
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, NotFound("Category not found")
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, NotFound("Category not found")
		}
		return dto.CategoryResponse{}, err
	}

	// Slug is recomputed only when the name actually changes.
	if req.Name != nil && *req.Name != c.Name {
		computed := slug.Generate(*req.Name)
		if computed == "" {
			return dto.CategoryResponse{}, Invalid("Category name is required")
		}
		existing, err := s.repo.FindBySlug(ctx, computed)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, err
		}
		if err == nil && existing != nil && existing.ID != id {
			return dto.CategoryResponse{}, Conflict("Category already exists")
		}
		c.Name = *req.Name
		c.Slug = computed
	}

	// A replaced image retires the previous object-store asset. The cleanup
	// is detached: its outcome never blocks the update.
	if req.Image != nil && *req.Image != "" && c.Image != "" && *req.Image != c.Image {
		s.cleaner.EnqueueDelete(ctx, c.Image)
	}
	if req.Image != nil && *req.Image != "" {
		c.Image = *req.Image
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Order != nil {
		c.Order = *req.Order
	}

	// Booleans are only overwritten when the request carries an actual
	// value — "not provided" must not reset an explicit false.
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.Highlighted != nil {
		c.Highlighted = *req.Highlighted
	}

	if req.ParentID != nil {
		if *req.ParentID == "" {
			c.ParentID = nil
		} else {
			parentID, err := uuid.Parse(*req.ParentID)
			if err != nil {
				return dto.CategoryResponse{}, Invalid("Invalid parent category id")
			}
			if parentID == id {
				return dto.CategoryResponse{}, Invalid("A category cannot be its own parent")
			}
			c.ParentID = &parentID
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, Conflict("Category already exists")
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Category not found")
		}
		return err
	}

	// Deletion is rejected, never cascaded, while subcategories exist.
	children, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return Conflict("Cannot delete this category. Please delete or reassign its subcategories first.")
	}

	if c.Image != "" {
		s.cleaner.EnqueueDelete(ctx, c.Image)
	}
	return s.repo.Delete(ctx, id)
}
