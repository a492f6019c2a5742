// Package storage keeps user uploaded media in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"soko/config"
	"soko/internal/domain/service"
	"soko/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const defaultBucketURL = "mem://"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.AvatarStorage, error) {
	bucketURL := params.Config.Blob.BucketURL
	if bucketURL == "" {
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Logger.Info("Blob bucket opened", slog.String("url", bucketURL))
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobAvatarStorage(bucket, params.Config.Blob.PublicBaseURL), nil
}

// BlobAvatarStorage writes avatars under the "avatars/" prefix.
type BlobAvatarStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobAvatarStorage wraps an open bucket.
func NewBlobAvatarStorage(bucket *blob.Bucket, publicBaseURL string) *BlobAvatarStorage {
	return &BlobAvatarStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload streams body to the bucket and returns the public URL of the object.
func (s *BlobAvatarStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	objectKey := "avatars/" + strings.TrimLeft(key, "/")

	w, err := s.bucket.NewWriter(ctx, objectKey, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", objectKey)
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", objectKey)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", objectKey)
	}

	if s.publicBaseURL == "" {
		return "/" + objectKey, nil
	}

	return s.publicBaseURL + "/" + objectKey, nil
}
