package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps objects under a base directory. Writes go to a
// temporary file first and are renamed into place.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates baseDir when missing. baseURL prefixes public URLs,
// e.g. "/media/".
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCreateDirectory, err)
	}
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStorage{baseDir: abs, baseURL: baseURL}, nil
}

// Dir returns the absolute base directory, for serving it over HTTP.
func (s *LocalStorage) Dir() string { return s.baseDir }

// Put implements Storage.
func (s *LocalStorage) Put(ctx context.Context, p string, r io.Reader, _ int64, contentType string) (*File, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "put")
	}
	key, abs, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".put-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	written, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, contextError(ctx.Err(), "put")
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}

	return &File{
		Path:        key,
		Size:        written,
		ContentType: ContentType(contentType, key, nil),
	}, nil
}

// Exists implements Storage.
func (s *LocalStorage) Exists(ctx context.Context, p string) bool {
	if ctx.Err() != nil {
		return false
	}
	_, abs, err := s.resolve(p)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// Delete implements Storage. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return contextError(err, "delete")
	}
	_, abs, err := s.resolve(p)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
		return fmt.Errorf("%w: %w", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}
	return nil
}

// List implements Storage.
func (s *LocalStorage) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "list")
	}
	key, abs, err := s.resolve(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	items, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Name(), ".put-") {
			continue
		}
		fi, err := item.Info()
		if err != nil {
			continue
		}
		e := Entry{
			Name:  item.Name(),
			Path:  strings.TrimPrefix(key+"/"+item.Name(), "/"),
			IsDir: item.IsDir(),
		}
		if !item.IsDir() {
			e.Size = fi.Size()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// URL implements Storage.
func (s *LocalStorage) URL(p string) string {
	key, err := CleanPath(p)
	if err != nil {
		return ""
	}
	return s.baseURL + key
}

func (s *LocalStorage) resolve(p string) (key, abs string, err error) {
	key, err = CleanPath(p)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", err, p)
	}
	abs = filepath.Join(s.baseDir, filepath.FromSlash(key))
	if abs != s.baseDir && !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
	}
	return key, abs, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func contextError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrOperationTimeout, op)
	}
	return fmt.Errorf("%w: %s", ErrOperationCanceled, op)
}
