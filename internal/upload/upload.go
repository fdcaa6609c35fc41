// Package upload is the file-storage collaborator: it accepts a byte stream
// plus the original filename and returns a stable relative path. Handlers
// never touch storage paths directly, which keeps them testable without disk.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Saver interface {
	Save(filename string, r io.Reader) (string, error)
}

// DiskStore writes uploads under dir; the router serves dir at /uploads/*.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	// timestamp plus a random suffix so same-millisecond uploads never collide
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("upload: write file: %w", err)
	}
	return "/uploads/" + name, nil
}
