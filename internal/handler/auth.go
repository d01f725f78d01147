package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterAdmin POST /api/auth/register-admin — public bootstrap route for
// creating admin accounts. Rate limited alongside login; cmd/seedadmin is the
// non-HTTP alternative for provisioning the first admin.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
