package storage

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsNilWithoutCredentials(t *testing.T) {
	c, err := New("", "us-east-1", "", "", "assets", "")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestBuildKey(t *testing.T) {
	before := time.Now().UnixMilli()
	key := BuildKey(FolderTemplates, "peacock.png")

	assert.True(t, strings.HasPrefix(key, FolderTemplates+"/"))
	assert.True(t, strings.HasSuffix(key, "-peacock.png"))

	// The middle segment is a millisecond timestamp.
	middle := strings.TrimSuffix(strings.TrimPrefix(key, FolderTemplates+"/"), "-peacock.png")
	ms, err := strconv.ParseInt(middle, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
}

func TestExtractKey(t *testing.T) {
	c, err := New("http://minio:9000", "us-east-1", "key", "secret", "assets", "https://cdn.example.com")
	require.NoError(t, err)
	require.NotNil(t, c)

	tests := []struct {
		name   string
		rawURL string
		key    string
		ok     bool
	}{
		{"cdn url", "https://cdn.example.com/templates/1-a.png", "templates/1-a.png", true},
		{"path-style url", "http://minio:9000/assets/banners/2-b.jpg", "banners/2-b.jpg", true},
		{"escaped key", "https://cdn.example.com/templates/1-a%20b.png", "templates/1-a b.png", true},
		{"foreign host", "https://elsewhere.example.com/templates/1-a.png", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.rawURL)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestFileURL_RoundTripsThroughExtractKey(t *testing.T) {
	c, err := New("http://minio:9000", "us-east-1", "key", "secret", "assets", "")
	require.NoError(t, err)

	url := c.FileURL("categories/3-c.webp")
	key, ok := c.ExtractKey(url)
	require.True(t, ok)
	assert.Equal(t, "categories/3-c.webp", key)
}
