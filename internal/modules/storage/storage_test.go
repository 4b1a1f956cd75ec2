package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("featured_image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["featured_image"][0]
}

func TestSaveFeaturedImagePath(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	rel, err := svc.SaveFeaturedImage(fileHeader(t, "photo.png", "png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	now := time.Now()
	wantDir := path.Join("uploads", now.Format("2006"), now.Format("01"), now.Format("02"))
	if path.Dir(rel) != wantDir {
		t.Errorf("dir = %q, want %q", path.Dir(rel), wantDir)
	}
	if !strings.HasSuffix(rel, "-photo.png") {
		t.Errorf("name = %q, want -photo.png suffix", path.Base(rel))
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveSameNameTwice(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	a, err := svc.SaveFeaturedImage(fileHeader(t, "photo.png", "first"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	b, err := svc.SaveFeaturedImage(fileHeader(t, "photo.png", "second"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if a == b {
		t.Fatalf("paths collide: %q", a)
	}
	for _, rel := range []string{a, b} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"we ird(name).png", "we_ird_name_.png"},
		{"../../etc/passwd", "passwd"},
		{"", "upload"},
		{".", "upload"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	rel, err := svc.SaveFeaturedImage(fileHeader(t, "gone.png", "x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Remove(rel); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); !os.IsNotExist(err) {
		t.Errorf("file still on disk after remove")
	}
	// a second remove and an empty path are both no-ops
	if err := svc.Remove(rel); err != nil {
		t.Errorf("second remove: %v", err)
	}
	if err := svc.Remove(""); err != nil {
		t.Errorf("empty remove: %v", err)
	}
}
