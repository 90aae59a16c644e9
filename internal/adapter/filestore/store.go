// Package filestore keeps uploaded avatars on the local filesystem.
//
// Objects are addressed by an opaque reference (a generated file name);
// the database only ever stores that reference.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/askme-backend/internal/config"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// ErrInvalidRef is returned for references that do not name a file inside
// the store directory.
var ErrInvalidRef = errors.New("invalid object reference")

// Store is a directory of immutable objects.
type Store struct {
	dir       string
	urlPrefix string
}

// New creates the directory if needed.
func New(cfg config.StorageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.AvatarDir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	return &Store{dir: cfg.AvatarDir, urlPrefix: cfg.AvatarURLPrefix}, nil
}

// Dir is the directory served under URLPrefix.
func (s *Store) Dir() string { return s.dir }

// URLPrefix is the public path the objects are served from.
func (s *Store) URLPrefix() string { return s.urlPrefix }

// Save writes r to a new object and returns its reference.
func (s *Store) Save(ctx context.Context, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := uuid.NewString() + extensions[contentType]
	path := filepath.Join(s.dir, ref)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close object: %w", err)
	}

	return ref, nil
}

// Delete removes the object. A missing object is not an error.
func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validRef(ref) {
		return fmt.Errorf("delete %q: %w", ref, ErrInvalidRef)
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// URL returns the public URL of ref, or "" for a nil reference.
func (s *Store) URL(ref *string) string {
	if ref == nil || *ref == "" {
		return ""
	}
	return s.urlPrefix + *ref
}

func validRef(ref string) bool {
	return ref != "" && ref != "." && ref != ".." &&
		!strings.ContainsAny(ref, `/\`) && filepath.Base(ref) == ref
}
