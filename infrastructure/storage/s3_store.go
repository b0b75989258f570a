package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"fotoshare/domain/contracts"
)

// S3Config holds the connection settings for an S3-compatible bucket.
// Endpoint is optional; when set it overrides the SDK's default
// resolver so MinIO and friends work too.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	// KeyPrefix namespaces objects within the bucket, e.g. "photos/"
	// or "thumbnails/".
	KeyPrefix string
}

// S3Store stores binaries in an S3-compatible bucket. It satisfies
// both FileStore and ThumbnailStore; use distinct key prefixes to
// keep originals and thumbnails apart.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store builds the S3 client from static credentials and returns
// the store.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket, prefix: cfg.KeyPrefix}, nil
}

func (s *S3Store) key(storedFilename string) string {
	return s.prefix + storedFilename
}

func (s *S3Store) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(storedName)),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", storedName, err)
	}
	return storedName, nil
}

func (s *S3Store) Open(ctx context.Context, storedFilename string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(storedFilename)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, contracts.ErrNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", storedFilename, err)
	}
	return out.Body, nil
}

func (s *S3Store) Delete(ctx context.Context, storedFilename string) error {
	// S3 DeleteObject succeeds on missing keys, which matches the
	// idempotent contract directly.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(storedFilename)),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", storedFilename, err)
	}
	return nil
}

func (s *S3Store) SaveThumbnail(ctx context.Context, thumbnailFilename string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(thumbnailFilename)),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("put thumbnail %s: %w", thumbnailFilename, err)
	}
	return nil
}

func (s *S3Store) OpenThumbnail(ctx context.Context, thumbnailFilename string) (io.ReadCloser, error) {
	return s.Open(ctx, thumbnailFilename)
}

func (s *S3Store) DeleteThumbnail(ctx context.Context, thumbnailFilename string) error {
	return s.Delete(ctx, thumbnailFilename)
}

var (
	_ contracts.FileStore      = (*S3Store)(nil)
	_ contracts.ThumbnailStore = (*S3Store)(nil)
)
