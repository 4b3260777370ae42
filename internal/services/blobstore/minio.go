package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// MinioStore keeps each key as an object in an S3-compatible bucket
type MinioStore struct {
	client *minio.Client
	bucket string
}

// MinioOptions configures a MinioStore
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// NewMinioStore connects to the object store and creates the bucket if needed
func NewMinioStore(ctx context.Context, opts MinioOptions) (*MinioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to create minio client")
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(checkCtx, opts.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to check bucket").
			WithDetail("bucket", opts.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(checkCtx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalService, "failed to create bucket").
				WithDetail("bucket", opts.Bucket)
		}
	}

	return &MinioStore{client: client, bucket: opts.Bucket}, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// Get downloads the object for key
func (ms *MinioStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := ms.client.GetObject(ctx, ms.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	// GetObject is lazy; a missing key surfaces on first read
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, true, nil
}

// Set uploads value as the object for key
func (ms *MinioStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := ms.client.PutObject(ctx, ms.bucket, key, bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Delete removes the object for key
func (ms *MinioStore) Delete(ctx context.Context, key string) error {
	if err := ms.client.RemoveObject(ctx, ms.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the minio client holds no persistent connection
func (ms *MinioStore) Close() error {
	return nil
}
