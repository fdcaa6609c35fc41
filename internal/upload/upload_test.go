package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aviation-institute-api/internal/upload"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	d, err := upload.NewDiskStore(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	path, err := d.Save("Hangar Photo.JPG", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") {
		t.Errorf("path: got %q", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("extension should be preserved lowercase: got %q", path)
	}

	b, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "image bytes" {
		t.Errorf("content: got %q", b)
	}
}

func TestDiskStoreSaveDistinctPaths(t *testing.T) {
	d, err := upload.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	a, err := d.Save("same.png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := d.Save("same.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a == b {
		t.Errorf("same source filename must not collide: %q", a)
	}
}

func TestNewDiskStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := upload.NewDiskStore(dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}
