// Package filesystem stores downloaded images under a root directory.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// Store is a driven.FileStore rooted at a directory. Paths that would
// leave the root, including through symlinks, are rejected.
type Store struct {
	dir  string
	root *os.Root
}

// NewStore opens dir as the storage root, creating it if needed.
// An empty dir means the current working directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root %s: %w", abs, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("opening storage root %s: %w", abs, err)
	}
	return &Store{dir: abs, root: root}, nil
}

// Close releases the root handle.
func (s *Store) Close() error {
	return s.root.Close()
}

// Root returns the absolute storage root.
func (s *Store) Root() string {
	return s.dir
}

// Exists reports whether any entry occupies path.
func (s *Store) Exists(path string) (bool, error) {
	name, err := localName(path)
	if err != nil {
		return false, err
	}
	if _, err := s.root.Lstat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MkdirAll creates path and any missing parents.
func (s *Store) MkdirAll(path string) error {
	name, err := localName(path)
	if err != nil {
		return err
	}
	if name == "." {
		return nil
	}

	current := ""
	for _, seg := range strings.Split(name, string(filepath.Separator)) {
		current = filepath.Join(current, seg)
		err := s.root.Mkdir(current, 0o755)
		if err == nil || errors.Is(err, fs.ErrExist) {
			continue
		}
		return fmt.Errorf("creating %s: %w", current, err)
	}

	info, err := s.root.Stat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a folder: %w", path, domain.ErrInvalidInput)
	}
	return nil
}

// WriteFile creates path with data. Existing files are never replaced.
func (s *Store) WriteFile(path string, data []byte) error {
	name, err := localName(path)
	if err != nil {
		return err
	}
	if name == "." {
		return fmt.Errorf("empty file name: %w", domain.ErrInvalidInput)
	}

	f, err := s.root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = s.root.Remove(name)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// localName converts a slash-separated storage path to a local relative
// name. Absolute paths and ".." segments are rejected.
func localName(path string) (string, error) {
	clean := strings.Trim(strings.ReplaceAll(path, `\`, "/"), "/")
	if clean == "" {
		return ".", nil
	}
	if strings.HasPrefix(path, "/") || !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("path %q escapes the storage root: %w", path, domain.ErrInvalidInput)
	}
	return filepath.Clean(filepath.FromSlash(clean)), nil
}
