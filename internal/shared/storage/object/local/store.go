package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/util"
)

// Store implements ObjectStore using a flat directory on the local
// filesystem. File names are validated against traversal before any path is
// built.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the given name, creating the root
// directory on first use.
func (s *Store) Save(ctx context.Context, fileName string, contentType string, r io.Reader) (int64, error) {
	fullPath, err := s.resolve(fileName)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	_ = contentType // recorded by callers; the filesystem has no metadata slot
	return written, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(fileName)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Exists reports whether the named object is currently stored.
func (s *Store) Exists(ctx context.Context, fileName string) (bool, error) {
	fullPath, err := s.resolve(fileName)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the named object. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, fileName string) error {
	fullPath, err := s.resolve(fileName)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func (s *Store) resolve(fileName string) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, sanitized), nil
}

var _ object.ObjectStore = (*Store)(nil)
