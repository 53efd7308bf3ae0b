package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes uploads to a directory served by the app at /uploads.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Root returns the directory uploads are written to.
func (s *LocalStore) Root() string { return s.root }

// Save writes the file under root/dir with a unique suffix so repeated
// uploads of the same filename never clobber each other. The returned path
// is the public URL the router serves.
func (s *LocalStore) Save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload subdir: %w", err)
	}

	name := uniqueName(filename)
	f, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + dir + "/" + name, nil
}

func uniqueName(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	// sanitize anything weird out of the stem
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, stem)

	suffix := fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(1_000_000_000))
	return stem + "-" + suffix + ext
}
