package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"casting-agency/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaService(t *testing.T, publicURL string) *MediaService {
	t.Helper()
	svc, err := NewMediaService(&config.MinIOConfig{
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "casting",
		Region:          "us-east-1",
		UseSSL:          false,
		PublicURL:       publicURL,
	}, quietLogger())
	require.NoError(t, err)
	return svc
}

func TestGeneratePresignedURL(t *testing.T) {
	svc := newMediaService(t, "")

	upload, err := svc.GeneratePresignedURL(context.Background(), "actors", "headshot.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.ObjectName, "actors/headshot_"))
	assert.True(t, strings.HasSuffix(upload.ObjectName, ".jpg"))
	assert.Equal(t, "http://127.0.0.1:9000/casting/"+upload.ObjectName, upload.PublicURL)

	u, err := url.Parse(upload.PresignedURL)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", u.Host)
	assert.Equal(t, "/casting/"+upload.ObjectName, u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestGeneratePresignedURLUniqueNames(t *testing.T) {
	svc := newMediaService(t, "https://cdn.example.com/casting/")

	a, err := svc.GeneratePresignedURL(context.Background(), "movies", "poster.png")
	require.NoError(t, err)
	b, err := svc.GeneratePresignedURL(context.Background(), "movies", "poster.png")
	require.NoError(t, err)

	assert.NotEqual(t, a.ObjectName, b.ObjectName)
	assert.Equal(t, "https://cdn.example.com/casting/"+a.ObjectName, a.PublicURL)
}

func TestGeneratePresignedURLRejectsBadInput(t *testing.T) {
	svc := newMediaService(t, "")

	_, err := svc.GeneratePresignedURL(context.Background(), "trailers", "clip.mp4")
	assert.Error(t, err)

	_, err = svc.GeneratePresignedURL(context.Background(), "movies", "")
	assert.Error(t, err)
}
