package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/apierror"
	"github.com/CryptoCrazy982/awesomecraft-server/internal/storage"
)

const maxImageSize = 1 << 20 // 1MB

// allowedImageTypes are the content types the upload endpoints accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadsHandler stores admin-submitted images in the object store and
// returns their public URLs. The URLs are then referenced from category and
// template records.
type UploadsHandler struct{ store *storage.Client }

func NewUploadsHandler(store *storage.Client) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// UploadCategoryImage POST /api/upload/category
func (h *UploadsHandler) UploadCategoryImage(c *gin.Context) {
	h.upload(c, storage.FolderCategories)
}

// UploadTemplateImage POST /api/upload/template
func (h *UploadsHandler) UploadTemplateImage(c *gin.Context) {
	h.upload(c, storage.FolderTemplates)
}

func (h *UploadsHandler) upload(c *gin.Context, folder string) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Image file is required"))
		return
	}
	url, ok := uploadImage(c, h.store, folder, fh)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}

// uploadImage validates and stores one image, writing the error response
// itself on failure.
func uploadImage(c *gin.Context, store *storage.Client, folder string, fh *multipart.FileHeader) (string, bool) {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("Object storage is not configured"))
		return "", false
	}
	if fh.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, apierror.New("Image exceeds the 1MB size limit"))
		return "", false
	}
	contentType := fh.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, apierror.New("Only JPEG, PNG and WebP images are allowed"))
		return "", false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to read uploaded file"))
		return "", false
	}
	defer f.Close()

	key := storage.BuildKey(folder, fh.Filename)
	url, err := store.Upload(c.Request.Context(), key, contentType, f, fh.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to store uploaded file"))
		return "", false
	}
	return url, true
}
