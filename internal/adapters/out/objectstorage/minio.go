// Package objectstorage provides the MinIO-backed implementation of the
// release evidence store. Every call runs under a bounded timeout and
// transient failures surface as errs.ErrUnavailable so the write path can
// distinguish storage trouble from bad input.
package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"mailroom/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const requestTimeout = 10 * time.Second

// MinioStorage stores release evidence objects in a single bucket of an
// S3-compatible service. It implements ports.ObjectStorage.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a storage client for the given endpoint and
// bucket.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	if endpoint == "" {
		return nil, errs.NewValueIsRequiredError("endpoint")
	}
	if bucket == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("object storage", err)
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the evidence bucket when it does not exist yet.
// Called once at startup.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errs.NewUnavailableErrorWithCause("object storage", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errs.NewUnavailableErrorWithCause("object storage", err)
	}

	return nil
}

// Put stores content under path and returns the durable object URL.
func (s *MinioStorage) Put(ctx context.Context, path string, content []byte, contentType string) (string, error) {
	if path == "" {
		return "", errs.NewValueIsRequiredError("path")
	}
	if len(content) == 0 {
		return "", errs.NewValueIsRequiredError("content")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		path,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", errs.NewUnavailableErrorWithCause("object storage", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, path), nil
}

// Get retrieves the content stored under path.
func (s *MinioStorage) Get(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	object, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("object storage", err)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errs.NewObjectNotFoundError("object", path)
		}
		return nil, errs.NewUnavailableErrorWithCause("object storage", err)
	}

	return content, nil
}
