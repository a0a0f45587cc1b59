// Package media stores uploaded images on the local filesystem.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type Store struct {
	root      string
	urlPrefix string
	maxBytes  int64
}

func NewStore(cfg config.MediaConfig) *Store {
	return &Store{
		root:      cfg.Root,
		urlPrefix: cfg.URLPrefix,
		maxBytes:  int64(cfg.MaxUploadMB) << 20,
	}
}

// SaveImage writes r under dir and returns the path relative to the media
// root. Content that is not an image, or larger than the configured limit, is
// rejected with a validation error on the "image" field.
func (s *Store) SaveImage(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", domain.NewValidationError("image", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	if len(data) == 0 {
		return "", domain.NewValidationError("image", "the submitted file is empty")
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", domain.NewValidationError("image", "upload a valid image, got "+mtype.String())
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := path.Join(dir, fmt.Sprintf("%s-%s%s", slugify(name), uuid.NewString(), mtype.Extension()))
	target := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := writeFile(target, data); err != nil {
		return "", err
	}
	return rel, nil
}

// URL maps a stored relative path to its public location.
func (s *Store) URL(rel string) string {
	return strings.TrimSuffix(s.urlPrefix, "/") + "/" + rel
}

func (s *Store) Root() string {
	return s.root
}

func writeFile(target string, data []byte) error {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		return fmt.Errorf("write media file: %w", err)
	}
	return f.Close()
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "image"
	}
	return slug
}
