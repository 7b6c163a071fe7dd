// Package storage keeps uploaded profile photos. The server picks one backend
// at boot: a local directory or an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
)

// ErrNotFound is returned by Open when the object does not exist.
var ErrNotFound = errors.New("storage: object not found")

// Object is an opened photo. The caller closes it.
type Object struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// PhotoStore stores photos under flat object names.
type PhotoStore interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (*Object, error)
	Delete(ctx context.Context, name string) error
}

// cleanName drops any directory component so a name can never escape the store.
func cleanName(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." || base == "" {
		return "", errors.New("storage: invalid object name")
	}
	return base, nil
}
