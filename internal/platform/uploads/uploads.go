// Package uploads persists multipart file uploads to local disk and returns
// the stored paths for embedding in records.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Saver stores uploaded files. Implementations return the path under which
// each file was stored, suitable for serving back to clients.
type Saver interface {
	Save(header *multipart.FileHeader) (string, error)
}

// DiskSaver writes uploads into a single directory, renaming each file to a
// random name so concurrent uploads never collide.
type DiskSaver struct {
	dir string
}

// NewDiskSaver creates the upload directory if needed and returns a saver
// writing into it.
func NewDiskSaver(dir string) (*DiskSaver, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}
	return &DiskSaver{dir: dir}, nil
}

// Save copies the uploaded file to disk under a random name, keeping the
// original extension.
func (s *DiskSaver) Save(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}
