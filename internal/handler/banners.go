package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/apierror"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/dto"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/service"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/storage"
)

const (
	bannerCacheKey = "cache:banners"
	bannerCacheTTL = 10 * time.Minute
)

// BannersHandler manages homepage banners. The public listing is cached in
// Redis because it is hit on every storefront page load.
type BannersHandler struct {
	svc   service.BannerService
	store *storage.Client
	rdb   *redis.Client
}

func NewBannersHandler(svc service.BannerService, store *storage.Client, rdb *redis.Client) *BannersHandler {
	return &BannersHandler{svc: svc, store: store, rdb: rdb}
}

// List GET /api/banners — public.
func (h *BannersHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, bannerCacheKey).Bytes(); err == nil {
			var resp []dto.BannerResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.ListActive(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), bannerCacheKey, b, bannerCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Create POST /api/banners — multipart form carrying the banner fields plus
// the background image under "bg".
func (h *BannersHandler) Create(c *gin.Context) {
	var req dto.CreateBannerRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	fh, err := c.FormFile("bg")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Background image is required"))
		return
	}
	backgroundURL, ok := uploadImage(c, h.store, storage.FolderBanners, fh)
	if !ok {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req, backgroundURL)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusCreated, resp)
}

// Delete DELETE /api/banners/:id
func (h *BannersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}

func (h *BannersHandler) invalidateCache(c *gin.Context) {
	if h.rdb != nil {
		_ = h.rdb.Del(c.Request.Context(), bannerCacheKey).Err()
	}
}
