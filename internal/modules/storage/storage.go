// Package storage persists uploaded featured images under the static
// directory, in dated subfolders like the upload paths the public site
// already serves.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type Service struct {
	staticDir string
}

func NewService(staticDir string) *Service {
	return &Service{staticDir: staticDir}
}

// SaveFeaturedImage writes the uploaded file to
// <static>/uploads/YYYY/MM/DD/<uuid>-<name> and returns the path
// relative to the static dir, which is what the blog row stores.
func (s *Service) SaveFeaturedImage(fh *multipart.FileHeader) (string, error) {
	now := time.Now()
	relDir := path.Join("uploads", now.Format("2006"), now.Format("01"), now.Format("02"))

	absDir := filepath.Join(s.staticDir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString()[:8] + "-" + sanitizeFilename(fh.Filename)
	absPath := filepath.Join(absDir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(absPath)
		return "", err
	}
	return path.Join(relDir, name), nil
}

// Remove deletes a previously stored image. Missing files are ignored.
func (s *Service) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.staticDir, filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128,
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || out == "." {
		out = "upload"
	}
	return out
}
