package storage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestImageStoreSave(t *testing.T) {
	t.Run("stores a decodable png", func(t *testing.T) {
		store := NewImageStore(t.TempDir(), "/media/", 5<<20)

		relPath, err := store.Save(bytes.NewReader(pngBytes(t)))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(relPath, "recipes/"))
		assert.True(t, strings.HasSuffix(relPath, ".png"))

		data, err := os.ReadFile(filepath.Join(store.Root, filepath.FromSlash(relPath)))
		require.NoError(t, err)
		assert.Equal(t, pngBytes(t), data)
	})

	t.Run("rejects undecodable payload", func(t *testing.T) {
		store := NewImageStore(t.TempDir(), "/media/", 5<<20)

		_, err := store.Save(strings.NewReader("definitely not an image"))
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("rejects oversized payload", func(t *testing.T) {
		data := pngBytes(t)
		store := NewImageStore(t.TempDir(), "/media/", int64(len(data)-1))

		_, err := store.Save(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("generates distinct names", func(t *testing.T) {
		store := NewImageStore(t.TempDir(), "/media/", 5<<20)

		first, err := store.Save(bytes.NewReader(pngBytes(t)))
		require.NoError(t, err)
		second, err := store.Save(bytes.NewReader(pngBytes(t)))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestImageStoreRemove(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/media/", 5<<20)

	relPath, err := store.Save(bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	require.NoError(t, store.Remove(relPath))
	_, err = os.Stat(filepath.Join(store.Root, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))

	// Removing twice, or removing nothing, is fine.
	assert.NoError(t, store.Remove(relPath))
	assert.NoError(t, store.Remove(""))
}

func TestImageStoreURL(t *testing.T) {
	store := NewImageStore(t.TempDir(), "/media/", 5<<20)

	assert.Equal(t, "/media/recipes/a.png", store.URL("recipes/a.png"))
	assert.Equal(t, "", store.URL(""))
}
