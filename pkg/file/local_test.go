package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/file"
)

func newLocal(t *testing.T) *file.LocalStorage {
	t.Helper()
	s, err := file.NewLocalStorage(filepath.Join(t.TempDir(), "media"), "/media")
	require.NoError(t, err)
	return s
}

func TestLocalStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("put exists list delete", func(t *testing.T) {
		t.Parallel()
		s := newLocal(t)

		f, err := s.Put(ctx, "gallery/orto.webp", strings.NewReader("webp-bytes"), 10, "image/webp")
		require.NoError(t, err)
		assert.Equal(t, "gallery/orto.webp", f.Path)
		assert.Equal(t, int64(10), f.Size)
		assert.Equal(t, "image/webp", f.ContentType)

		raw, err := os.ReadFile(filepath.Join(s.Dir(), "gallery", "orto.webp"))
		require.NoError(t, err)
		assert.Equal(t, "webp-bytes", string(raw))

		assert.True(t, s.Exists(ctx, "gallery/orto.webp"))
		assert.Equal(t, "/media/gallery/orto.webp", s.URL("gallery/orto.webp"))

		entries, err := s.List(ctx, "gallery")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, file.Entry{Name: "orto.webp", Path: "gallery/orto.webp", Size: 10}, entries[0])

		root, err := s.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, root, 1)
		assert.True(t, root[0].IsDir)

		require.NoError(t, s.Delete(ctx, "gallery/orto.webp"))
		assert.False(t, s.Exists(ctx, "gallery/orto.webp"))
		require.ErrorIs(t, s.Delete(ctx, "gallery/orto.webp"), file.ErrFileNotFound)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		s := newLocal(t)
		_, err := s.Put(ctx, "a.txt", strings.NewReader("one"), 3, "")
		require.NoError(t, err)
		_, err = s.Put(ctx, "a.txt", strings.NewReader("two!"), 4, "")
		require.NoError(t, err)
		raw, err := os.ReadFile(filepath.Join(s.Dir(), "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "two!", string(raw))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		t.Parallel()
		s := newLocal(t)
		_, err := s.Put(ctx, "../escape.txt", strings.NewReader("x"), 1, "")
		require.ErrorIs(t, err, file.ErrInvalidPath)
		_, err = s.Put(ctx, "", strings.NewReader("x"), 1, "")
		require.ErrorIs(t, err, file.ErrInvalidPath)
		assert.False(t, s.Exists(ctx, "../"))
		assert.Empty(t, s.URL("../x"))
	})

	t.Run("directory errors", func(t *testing.T) {
		t.Parallel()
		s := newLocal(t)
		_, err := s.Put(ctx, "dir/a.txt", strings.NewReader("x"), 1, "")
		require.NoError(t, err)

		require.ErrorIs(t, s.Delete(ctx, "dir"), file.ErrIsDirectory)
		_, err = s.List(ctx, "dir/a.txt")
		require.ErrorIs(t, err, file.ErrNotDirectory)
		_, err = s.List(ctx, "missing")
		require.ErrorIs(t, err, file.ErrDirectoryNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		s := newLocal(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Put(cctx, "a.txt", strings.NewReader("x"), 1, "")
		require.ErrorIs(t, err, file.ErrOperationCanceled)
		assert.False(t, s.Exists(ctx, "a.txt"))
	})

	t.Run("nil reader", func(t *testing.T) {
		t.Parallel()
		_, err := newLocal(t).Put(ctx, "a.txt", nil, 0, "")
		require.ErrorIs(t, err, file.ErrNilReader)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := file.New(context.Background(), file.Config{Driver: file.DriverLocal, LocalDir: t.TempDir(), LocalURL: "/media/"})
	require.NoError(t, err)
	assert.IsType(t, &file.LocalStorage{}, s)

	_, err = file.New(context.Background(), file.Config{Driver: "ftp"})
	require.ErrorIs(t, err, file.ErrInvalidConfig)

	_, err = file.New(context.Background(), file.Config{Driver: file.DriverS3})
	require.ErrorIs(t, err, file.ErrInvalidConfig)
}
