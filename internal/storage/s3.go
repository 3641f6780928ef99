// Package storage uploads public assets (barber avatars) to an S3-compatible
// bucket. When no bucket is configured every operation is a no-op, so local
// setups run without object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/agendai-app/booking-api/internal/config"
)

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Store struct {
	client    S3API
	bucket    string
	publicURL string
}

func NewStore(client S3API, bucket, publicURL string) *Store {
	return &Store{client: client, bucket: bucket, publicURL: publicURL}
}

// NewClient builds the S3 client from static credentials. Endpoint is
// optional; when set it points at an S3-compatible provider (MinIO, R2).
func NewClient(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

func (s *Store) Enabled() bool {
	return s != nil && s.client != nil && s.bucket != ""
}

// UploadAvatar stores the processed image under avatars/<userID>.webp and
// returns the public URL.
func (s *Store) UploadAvatar(ctx context.Context, userID uint, data []byte) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("storage: not configured")
	}

	key := fmt.Sprintf("avatars/%d.webp", userID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	return strings.TrimSuffix(s.publicURL, "/") + "/" + key, nil
}
