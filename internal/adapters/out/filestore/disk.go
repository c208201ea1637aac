// Package filestore stores uploaded prescription documents on local disk.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"farmaya/internal/pkg/errs"
)

const dirPermissions = 0o750

// DiskFileStore writes uploads under a single media directory. References
// handed back to callers are relative file names, never absolute paths, so
// the directory can move without invalidating stored orders.
type DiskFileStore struct {
	root string
}

// NewDiskFileStore creates a store rooted at the given directory, creating
// it when missing.
func NewDiskFileStore(root string) (*DiskFileStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errs.NewValueIsRequiredError("media directory")
	}
	if err := os.MkdirAll(root, dirPermissions); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &DiskFileStore{root: root}, nil
}

// Save writes the content under a fresh name that keeps the original
// extension for content-type sniffing on download.
func (s *DiskFileStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	ref := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.root, ref))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(filepath.Join(s.root, ref))
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(filepath.Join(s.root, ref))
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return ref, nil
}

// Delete removes a stored file. A missing file is not an error; references
// may be cleaned up twice during failure recovery.
func (s *DiskFileStore) Delete(_ context.Context, ref string) error {
	ref = filepath.Base(ref)
	if ref == "." || ref == string(filepath.Separator) {
		return errs.NewValueIsInvalidError("ref")
	}

	err := os.Remove(filepath.Join(s.root, ref))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Root returns the media directory, used to serve stored files over HTTP.
func (s *DiskFileStore) Root() string {
	return s.root
}
