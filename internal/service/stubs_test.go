package service

// In-memory repository stubs shared by the service tests. They mimic the
// GORM contract surface the services rely on, including returning
// gorm.ErrRecordNotFound for missing records.

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/catalog"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/repository"
)

// ── AssetCleaner recorder ─────────────────────────────────────────────────────

type recordingCleaner struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingCleaner) EnqueueDelete(_ context.Context, urls ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, urls...)
}

var _ AssetCleaner = (*recordingCleaner)(nil)

// ── CategoryRepository stub ───────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) add(c model.Category) *model.Category {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.categories[c.ID] = &c
	return &c
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, existing := range r.categories {
		if existing.Slug == c.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			cloned := *c
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) FindBySlugOrName(_ context.Context, slug, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug || c.Name == name {
			cloned := *c
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Category, error) {
	var out []model.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindChildren(_ context.Context, parentID uuid.UUID) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) CountChildren(_ context.Context, parentID uuid.UUID) (int64, error) {
	children, _ := r.FindChildren(context.Background(), parentID)
	return int64(len(children)), nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, existing := range r.categories {
		if existing.ID != c.ID && existing.Slug == c.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── TemplateRepository stub ───────────────────────────────────────────────────

type stubTemplateRepo struct {
	templates map[uuid.UUID]*model.Template

	// recorded by ListPublic for predicate assertions
	lastPredicate catalog.Predicate
	lastOrderBy   string
	lastPage      int
	lastLimit     int
	listResult    []model.Template
}

func newStubTemplateRepo() *stubTemplateRepo {
	return &stubTemplateRepo{templates: make(map[uuid.UUID]*model.Template)}
}

func (r *stubTemplateRepo) add(t model.Template) *model.Template {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	r.templates[t.ID] = &t
	return &t
}

func (r *stubTemplateRepo) Create(_ context.Context, t *model.Template) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cloned := *t
	r.templates[t.ID] = &cloned
	return nil
}

func (r *stubTemplateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *stubTemplateRepo) FindBySlug(_ context.Context, slug string) (*model.Template, error) {
	for _, t := range r.templates {
		if t.Slug == slug {
			cloned := *t
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTemplateRepo) ExistsTemplateID(_ context.Context, templateID string, exclude uuid.UUID) (bool, error) {
	for _, t := range r.templates {
		if t.TemplateID == templateID && t.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, t *model.Template) error {
	if _, ok := r.templates[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *t
	r.templates[t.ID] = &cloned
	return nil
}

func (r *stubTemplateRepo) ReplaceCategories(_ context.Context, t *model.Template, categories []model.Category) error {
	t.Categories = categories
	return nil
}

func (r *stubTemplateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.templates, id)
	return nil
}

func (r *stubTemplateRepo) ListAdmin(_ context.Context, filter dto.TemplateAdminFilter) ([]model.Template, int64, error) {
	out := make([]model.Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTemplateRepo) ListPublic(_ context.Context, p catalog.Predicate, orderBy string, page, limit int) ([]model.Template, error) {
	r.lastPredicate = p
	r.lastOrderBy = orderBy
	r.lastPage = page
	r.lastLimit = limit
	return r.listResult, nil
}

var _ repository.TemplateRepository = (*stubTemplateRepo)(nil)

// ── UserRepository stub ───────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cloned := *u
	r.users[u.Email] = &cloned
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUserRepo) FindAdminByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok || u.Role != model.RoleAdmin {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── OrderRepository stub ──────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders    map[uuid.UUID]*model.Order
	templates map[uuid.UUID]model.Template
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders:    make(map[uuid.UUID]*model.Order),
		templates: make(map[uuid.UUID]model.Template),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cloned := *o
	r.orders[o.ID] = &cloned
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *o
	return &cloned, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *o
	r.orders[o.ID] = &cloned
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) FindTemplates(_ context.Context, ids []uuid.UUID) ([]model.Template, error) {
	var out []model.Template
	for _, id := range ids {
		if t, ok := r.templates[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)
