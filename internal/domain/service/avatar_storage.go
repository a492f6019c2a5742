package service

import (
	"context"
	"io"
)

// AvatarStorage stores profile pictures and returns their public URL.
type AvatarStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
