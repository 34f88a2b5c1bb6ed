// Package storage uploads restaurant and food images to S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported content type")

type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3ImageStore struct {
	bucket   string
	uploader uploader
	now      func() time.Time
}

// NewS3ImageStore loads the default AWS credential chain.
func NewS3ImageStore(ctx context.Context, bucket string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{bucket: bucket, uploader: manager.NewUploader(client), now: time.Now}, nil
}

func (s *S3ImageStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w %q", ErrUnsupportedType, contentType)
	}

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(folder, filename)),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s: %w", filename, err)
	}
	return result.Location, nil
}

// objectKey keeps uploads unique so re-uploads never overwrite each other.
func (s *S3ImageStore) objectKey(folder, filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "-")
	return path.Join(folder, fmt.Sprintf("%s-%s-%s", s.now().Format("20060102150405"), uuid.NewString()[:8], base))
}
