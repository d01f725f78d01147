// Package storage provides the S3-compatible object store used for category,
// template, and banner images. It wraps the AWS SDK v2 and exposes the two
// operations the rest of the system relies on: put bytes under a derived key
// and delete by public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Folder prefixes for uploaded assets.
const (
	FolderTemplates  = "templates"
	FolderBanners    = "banners"
	FolderCategories = "categories"
)

// Client wraps an S3 client for image asset operations on a single public
// bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL prefix for public files
}

// New creates an S3 storage client. Returns (nil, nil) when endpoint or
// credentials are empty, allowing the app to start without storage in local
// development.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// BuildKey derives the object key for a fresh upload: the logical folder, a
// millisecond timestamp, and the original filename.
func BuildKey(folder, filename string) string {
	return fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), filename)
}

// Upload stores an object with public-read ACL and returns its public URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return c.FileURL(key), nil
}

// Delete removes the object behind a previously returned public URL. URLs
// that do not belong to this store are ignored.
func (c *Client) Delete(ctx context.Context, rawURL string) error {
	key, ok := c.ExtractKey(rawURL)
	if !ok {
		return nil
	}
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for an object key. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// ExtractKey re-derives the object key from a public file URL. Returns the
// key and true if the URL matches this store's URL pattern.
func (c *Client) ExtractKey(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	prefixes := []string{c.endpoint + "/" + c.bucket + "/"}
	if c.publicURL != "" {
		prefixes = append([]string{c.publicURL + "/"}, prefixes...)
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(rawURL, prefix) {
			key := rawURL[len(prefix):]
			if decoded, err := url.PathUnescape(key); err == nil {
				key = decoded
			}
			return key, true
		}
	}
	return "", false
}
