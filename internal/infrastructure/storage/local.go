// Package storage implements the upload file store on the local filesystem.
// Every stored file gets a cryptographically random name preserving the
// original extension, so user-supplied names can neither collide nor traverse
// outside the upload root.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "pdf": {},
}

// LocalStore stores uploads under a single directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory when missing.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// IsAllowed reports whether filename carries an extension on the allow-list.
func IsAllowed(filename string) bool {
	ext := extension(filename)
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

// RandomName generates a random filename preserving the original extension.
func RandomName(filename string) (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("random filename: %w", err)
	}
	return hex.EncodeToString(b) + "." + extension(filename), nil
}

func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	if !IsAllowed(filename) {
		return "", domain.ErrFileNotAllowed
	}

	stored, err := RandomName(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}
	return stored, nil
}

func (s *LocalStore) Open(stored string) (io.ReadSeekCloser, error) {
	// Stored names are generated by RandomName; reject anything that could
	// point outside the upload root.
	if stored == "" || stored != filepath.Base(stored) {
		return nil, domain.ErrFileNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, stored))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Remove(stored string) error {
	if stored == "" || stored != filepath.Base(stored) {
		return domain.ErrFileNotFound
	}
	if err := os.Remove(filepath.Join(s.dir, stored)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}
