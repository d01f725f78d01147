package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/catalog"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

// TemplateRepository defines the data access contract for catalog templates.
type TemplateRepository interface {
	Create(ctx context.Context, t *model.Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Template, error)
	FindBySlug(ctx context.Context, slug string) (*model.Template, error)
	// ExistsTemplateID reports whether another record already carries the
	// admin-assigned external identifier. exclude skips the record being
	// edited; pass uuid.Nil on create.
	ExistsTemplateID(ctx context.Context, templateID string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, t *model.Template) error
	ReplaceCategories(ctx context.Context, t *model.Template, categories []model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAdmin serves the back-office listing with its own search/sort rules.
	ListAdmin(ctx context.Context, filter dto.TemplateAdminFilter) ([]model.Template, int64, error)
	// ListPublic executes a fully resolved public catalog predicate.
	ListPublic(ctx context.Context, p catalog.Predicate, orderBy string, page, limit int) ([]model.Template, error)
}

type templateRepo struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) TemplateRepository { return &templateRepo{db: db} }

func (r *templateRepo) Create(ctx context.Context, t *model.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Template, error) {
	var t model.Template
	err := r.db.WithContext(ctx).Preload("Categories").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *templateRepo) FindBySlug(ctx context.Context, slug string) (*model.Template, error) {
	var t model.Template
	err := r.db.WithContext(ctx).Preload("Categories").Where("slug = ?", slug).First(&t).Error
	return &t, err
}

func (r *templateRepo) ExistsTemplateID(ctx context.Context, templateID string, exclude uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Template{}).Where("template_id = ?", templateID)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *templateRepo) Update(ctx context.Context, t *model.Template) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *templateRepo) ReplaceCategories(ctx context.Context, t *model.Template, categories []model.Category) error {
	return r.db.WithContext(ctx).Model(t).Association("Categories").Replace(categories)
}

func (r *templateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Categories").Delete(&model.Template{ID: id}).Error
}

// adminSortColumns whitelists the sortable back-office columns.
var adminSortColumns = map[string]string{
	"createdAt":  "created_at",
	"title":      "title",
	"templateId": "template_id",
	"salePrice":  "sale_price",
	"status":     "status",
}

func (r *templateRepo) ListAdmin(ctx context.Context, filter dto.TemplateAdminFilter) ([]model.Template, int64, error) {
	var templates []model.Template
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Template{})

	if filter.TemplateID != "" {
		q = q.Where("template_id ILIKE ?", "%"+catalog.EscapeLike(filter.TemplateID)+"%")
	}
	if filter.Title != "" {
		q = q.Where("title ILIKE ?", "%"+catalog.EscapeLike(filter.Title)+"%")
	}
	if filter.Category != "" {
		q = q.Where("id IN (SELECT template_id FROM template_categories WHERE category_id = ?)", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := adminSortColumns[filter.SortField]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Categories").
		Order(column + " " + direction).
		Limit(filter.Limit).Offset(offset).
		Find(&templates).Error
	return templates, total, err
}

func (r *templateRepo) ListPublic(ctx context.Context, p catalog.Predicate, orderBy string, page, limit int) ([]model.Template, error) {
	var templates []model.Template

	q := r.db.WithContext(ctx).Model(&model.Template{})
	for _, cond := range p.Conds {
		q = q.Where(cond.Expr, cond.Args...)
	}

	err := q.Preload("Categories").
		Order(orderBy).
		Limit(limit).Offset((page - 1) * limit).
		Find(&templates).Error
	return templates, err
}
