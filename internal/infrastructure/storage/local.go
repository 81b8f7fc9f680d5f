package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local stores uploaded documents on disk under a base directory, one
// subdirectory per document category. Filenames are regenerated from a UUID
// so uploads can never collide or traverse paths.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &Local{baseDir: baseDir}, nil
}

var allowedExt = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Save writes the uploaded file into baseDir/category and returns the
// relative path to store on the owning record.
func (s *Local) Save(fh *multipart.FileHeader, category string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("storage: file type %q not allowed", ext)
	}
	category = filepath.Base(category) // no separators in category
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return filepath.ToSlash(filepath.Join(category, name)), nil
}

// Remove deletes a previously saved file; a missing file is not an error.
func (s *Local) Remove(relPath string) error {
	full := filepath.Join(s.baseDir, filepath.Clean("/"+relPath))
	err := os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
