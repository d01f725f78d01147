package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
)

type stubCategoryService struct {
	created   *dto.CreateCategoryRequest
	createErr error
}

func (s *stubCategoryService) Create(_ context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	if s.createErr != nil {
		return dto.CategoryResponse{}, s.createErr
	}
	s.created = &req
	return dto.CategoryResponse{Name: req.Name, Slug: "stub"}, nil
}

func (s *stubCategoryService) List(context.Context) ([]dto.CategoryResponse, error) {
	return []dto.CategoryResponse{}, nil
}

func (s *stubCategoryService) Get(context.Context, uuid.UUID) (dto.CategoryResponse, error) {
	return dto.CategoryResponse{}, nil
}

func (s *stubCategoryService) Update(context.Context, uuid.UUID, dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	return dto.CategoryResponse{}, nil
}

func (s *stubCategoryService) Delete(context.Context, uuid.UUID) error { return nil }

var _ service.CategoryService = (*stubCategoryService)(nil)

func categoriesRouter(svc service.CategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoriesHandler(svc)
	r.POST("/api/categories", h.Create)
	r.DELETE("/api/categories/:id", h.Delete)
	return r
}

func TestCategoryCreate_MissingNameFailsValidation(t *testing.T) {
	svc := &stubCategoryService{}
	r := categoriesRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"description":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Name")
	assert.Nil(t, svc.created)
}

func TestCategoryCreate_Valid(t *testing.T) {
	svc := &stubCategoryService{}
	r := categoriesRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Wedding"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Wedding", svc.created.Name)
}

func TestCategoryCreate_ConflictMapsTo400(t *testing.T) {
	svc := &stubCategoryService{createErr: service.Conflict("Category already exists")}
	r := categoriesRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Wedding"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")
}

func TestCategoryDelete_InvalidID(t *testing.T) {
	r := categoriesRouter(&stubCategoryService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
