package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
)

type stubAuthService struct {
	loginErr    error
	registerErr error
}

func (s *stubAuthService) Login(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	if s.loginErr != nil {
		return dto.LoginResponse{}, s.loginErr
	}
	return dto.LoginResponse{Message: "Login successful", Token: "tok", Admin: dto.AdminInfo{Email: req.Email}}, nil
}

func (s *stubAuthService) RegisterAdmin(_ context.Context, req dto.RegisterAdminRequest) (dto.AdminInfo, error) {
	if s.registerErr != nil {
		return dto.AdminInfo{}, s.registerErr
	}
	return dto.AdminInfo{ID: "1", Name: req.Name, Email: req.Email}, nil
}

// authRouter mounts the auth endpoints the way the composition root does:
// without any JWT middleware in front.
func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/register-admin", h.RegisterAdmin)
	return r
}

func postJSONTo(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAdmin_ReachableWithoutToken(t *testing.T) {
	r := authRouter(&stubAuthService{})

	rec := postJSONTo(r, "/api/auth/register-admin",
		`{"name":"Admin","email":"admin@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestRegisterAdmin_ConflictMapsTo400(t *testing.T) {
	r := authRouter(&stubAuthService{registerErr: service.Conflict("An account with this email already exists")})

	rec := postJSONTo(r, "/api/auth/register-admin",
		`{"name":"Admin","email":"admin@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestLogin_InvalidCredentialsMapTo400(t *testing.T) {
	r := authRouter(&stubAuthService{loginErr: service.Invalid("Invalid email or password")})

	rec := postJSONTo(r, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrongpw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}
