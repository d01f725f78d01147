package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(limit, window))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func getFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r := limitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, getFrom(r, "10.9.0.1").Code)
	}

	rec := getFrom(r, "10.9.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	r := limitedRouter(1, time.Minute)

	assert.Equal(t, http.StatusOK, getFrom(r, "10.9.0.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.9.0.2").Code)
	assert.Equal(t, http.StatusOK, getFrom(r, "10.9.0.3").Code)
}

func TestPurgeExpired_EvictsStaleEntriesOnly(t *testing.T) {
	r := limitedRouter(5, time.Minute)
	require.Equal(t, http.StatusOK, getFrom(r, "10.9.1.1").Code)
	require.Equal(t, http.StatusOK, getFrom(r, "10.9.1.2").Code)

	apiRateMapMu.Lock()
	stale, ok := apiRateMap["10.9.1.1"]
	apiRateMapMu.Unlock()
	require.True(t, ok)
	stale.mu.Lock()
	stale.windowEnd = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	purgeExpired(time.Now())

	apiRateMapMu.Lock()
	defer apiRateMapMu.Unlock()
	_, staleKept := apiRateMap["10.9.1.1"]
	_, liveKept := apiRateMap["10.9.1.2"]
	assert.False(t, staleKept)
	assert.True(t, liveKept)
}
