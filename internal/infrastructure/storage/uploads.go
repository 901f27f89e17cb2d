// Package storage persists uploaded images on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
)

// Store writes uploads under a single directory. Stored names are prefixed
// with a fresh UUID so concurrent uploads of the same filename never collide.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory uploads are written to.
func (s *Store) Dir() string { return s.dir }

// Save writes the upload under a unique name derived from originalName and
// returns the stored name and its full path.
func (s *Store) Save(r io.Reader, originalName string) (string, string, error) {
	name, err := sanitizeName(originalName)
	if err != nil {
		return "", "", err
	}
	stored := uuid.NewString() + "_" + name
	path, err := s.write(r, stored)
	if err != nil {
		return "", "", err
	}
	return stored, path, nil
}

// SaveRaw writes the upload under its sanitized original name, overwriting
// any previous file with that name.
func (s *Store) SaveRaw(r io.Reader, originalName string) (string, string, error) {
	name, err := sanitizeName(originalName)
	if err != nil {
		return "", "", err
	}
	path, err := s.write(r, name)
	if err != nil {
		return "", "", err
	}
	return name, path, nil
}

func (s *Store) write(r io.Reader, name string) (string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// sanitizeName strips any path components and rejects names that are empty
// after cleaning. Characters outside a safe set are replaced.
func sanitizeName(name string) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.TrimLeft(name, ".")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return "", domain.ErrInvalidUpload
	}
	return cleaned, nil
}
