package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/apierror"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/catalog"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
)

// PublicTemplatesHandler serves the storefront catalog. No authentication,
// no side effects; only Active templates ever leave these endpoints.
type PublicTemplatesHandler struct{ svc service.CatalogService }

func NewPublicTemplatesHandler(svc service.CatalogService) *PublicTemplatesHandler {
	return &PublicTemplatesHandler{svc: svc}
}

// List godoc
// @Summary Filtered public template listing
// @Tags public
// @Produce json
// @Param categorySlug query string false "Category slug (parents expand to their children)"
// @Param style query string false "Style tags, comma separated"
// @Param color query string false "Color fragments, comma separated"
// @Param minPrice query string false "Minimum sale price"
// @Param maxPrice query string false "Maximum sale price"
// @Param sort query string false "price_asc | price_desc | name_asc | name_desc"
// @Success 200 {object} dto.PublicTemplateListResponse
// @Router /api/public/templates [get]
func (h *PublicTemplatesHandler) List(c *gin.Context) {
	var f catalog.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query parameters"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search GET /api/public/templates/search?q=
func (h *PublicTemplatesHandler) Search(c *gin.Context) {
	q := c.Query("q")
	limit, _ := strconv.Atoi(c.Query("limit"))
	resp, err := h.svc.Search(c.Request.Context(), q, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/public/templates/:idOrSlug
func (h *PublicTemplatesHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByIDOrSlug(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
