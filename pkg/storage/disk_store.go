package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore serves objects from {root}/{bucket}/{path}. Used for local
// development where uploads live next to the binary.
type DiskStore struct {
	root   string
	bucket string
}

func NewDiskStore(root, bucket string) *DiskStore {
	return &DiskStore{root: root, bucket: bucket}
}

func (s *DiskStore) Download(ctx context.Context, path string) ([]byte, error) {
	return s.read(ctx, filepath.Join(s.root, s.bucket), path)
}

// DownloadRaw resolves the path against the store root without the bucket
// prefix, for image paths that were saved bucket-qualified.
func (s *DiskStore) DownloadRaw(ctx context.Context, path string) ([]byte, error) {
	return s.read(ctx, s.root, path)
}

func (s *DiskStore) read(ctx context.Context, base, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(base, filepath.FromSlash(path))
	rel, err := filepath.Rel(base, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("storage: path %q escapes store root", path)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}
