package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"casting-agency/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MediaKinds are the object prefixes uploads may be filed under.
var MediaKinds = map[string]bool{
	"movies": true,
	"actors": true,
}

// PresignedUpload is a one-shot PUT target plus the URL the object is served from.
type PresignedUpload struct {
	PresignedURL string    `json:"presigned_url"`
	PublicURL    string    `json:"public_url"`
	ObjectName   string    `json:"object_name"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// MediaService hands out presigned upload URLs for posters and headshots.
type MediaService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	logger    *logrus.Logger
}

func NewMediaService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MediaService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + endpoint + "/" + cfg.BucketName
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MediaService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

// EnsureBucket creates the bucket if needed and makes its objects publicly readable.
func (s *MediaService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL reserves a unique object name under kind/ and signs a PUT for it.
func (s *MediaService) GeneratePresignedURL(ctx context.Context, kind, filename string) (*PresignedUpload, error) {
	if !MediaKinds[kind] {
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}

	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		return nil, fmt.Errorf("invalid filename %q", filename)
	}
	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	objectName := fmt.Sprintf("%s/%s_%s%s", kind, nameWithoutExt, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		PresignedURL: presignedURL.String(),
		PublicURL:    s.publicURL + "/" + objectName,
		ObjectName:   objectName,
		ExpiresAt:    time.Now().UTC().Add(presignExpiry),
	}, nil
}
