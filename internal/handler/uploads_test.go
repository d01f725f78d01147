package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/storage"
)

func uploadsRouter(store *storage.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUploadsHandler(store)
	r.POST("/api/upload/template", h.UploadTemplateImage)
	return r
}

// multipartImage builds a multipart body with one "image" part carrying the
// given content type and payload size.
func multipartImage(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="pic.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0xFF}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func postUpload(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/upload/template", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpload_MissingFile(t *testing.T) {
	r := uploadsRouter(&storage.Client{})

	rec := postUpload(r, &bytes.Buffer{}, "multipart/form-data; boundary=x")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image file is required")
}

func TestUpload_StorageUnconfigured(t *testing.T) {
	r := uploadsRouter(nil)
	body, ct := multipartImage(t, "image/png", 16)

	rec := postUpload(r, body, ct)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Object storage is not configured")
}

func TestUpload_RejectsOversizeImage(t *testing.T) {
	r := uploadsRouter(&storage.Client{})
	body, ct := multipartImage(t, "image/png", maxImageSize+1)

	rec := postUpload(r, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "1MB size limit")
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	r := uploadsRouter(&storage.Client{})
	body, ct := multipartImage(t, "image/gif", 16)

	rec := postUpload(r, body, ct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "JPEG, PNG and WebP")
}
