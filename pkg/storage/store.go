// Package storage is the object-store boundary used to fetch assistant images.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("storage: object not found")

// ObjectStore downloads an object from the configured bucket by path.
type ObjectStore interface {
	Download(ctx context.Context, path string) ([]byte, error)
}

// SignedURLIssuer is implemented by stores that can hand out a time-limited URL
// for an object instead of (or in addition to) returning its bytes.
type SignedURLIssuer interface {
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// RawDownloader is a store's last-resort download path, bypassing whatever the
// regular Download does (auth, bucket prefixing).
type RawDownloader interface {
	DownloadRaw(ctx context.Context, path string) ([]byte, error)
}
