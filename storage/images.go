package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	// Register the decoders for the accepted upload formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

var (
	ErrNotAnImage = errors.New("payload is not a decodable image")
	ErrTooLarge   = errors.New("payload exceeds the maximum size")
)

const recipeImageDir = "recipes"

// ImageStore writes uploaded recipe images under a media root on the local
// filesystem and builds the public URLs they are served from.
type ImageStore struct {
	Root     string
	BaseURL  string
	MaxBytes int64
}

func NewImageStore(root, baseURL string, maxBytes int64) *ImageStore {
	return &ImageStore{Root: root, BaseURL: baseURL, MaxBytes: maxBytes}
}

// Save reads the whole payload, verifies it decodes as a jpeg or png and
// writes it to a fresh uuid-named file. It returns the path relative to the
// media root.
func (s *ImageStore) Save(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.MaxBytes {
		return "", ErrTooLarge
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}

	relPath := path.Join(recipeImageDir, uuid.New().String()+ext)
	absPath := filepath.Join(s.Root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return relPath, nil
}

// Remove deletes a previously stored image. A missing file is not an error.
func (s *ImageStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public URL for a stored image, or "" when there is none.
func (s *ImageStore) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + relPath
}
