package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/file"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// Storage prefixes.
const (
	GalleryDir = "gallery"
	ThumbsDir  = "thumbs"
)

// DefaultConcurrency is the number of parallel downloads.
const DefaultConcurrency = 4

// Source is the part of the CMS client the mirror reads from.
type Source interface {
	DownloadAsset(ctx context.Context, fileID string, transforms url.Values) (*directus.Asset, error)
}

// GalleryFunc lists the gallery items to mirror.
type GalleryFunc func(ctx context.Context, locale string) ([]directus.GalleryItem, error)

// Report summarizes one Sync run.
type Report struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Mirror copies gallery assets from the CMS into storage.
type Mirror struct {
	source      Source
	gallery     GalleryFunc
	storage     file.Storage
	concurrency int
	force       bool
	logger      *slog.Logger
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithConcurrency sets the number of parallel downloads.
func WithConcurrency(n int) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithForce re-downloads files already in storage.
func WithForce(force bool) Option {
	return func(m *Mirror) { m.force = force }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mirror) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMirror creates a Mirror reading the gallery and its files from cms.
func NewMirror(cms *directus.Client, storage file.Storage, opts ...Option) *Mirror {
	gallery := func(ctx context.Context, locale string) ([]directus.GalleryItem, error) {
		return directus.Gallery(ctx, cms, locale)
	}
	return NewMirrorFrom(cms, gallery, storage, opts...)
}

// NewMirrorFrom creates a Mirror over any Source and gallery listing.
func NewMirrorFrom(source Source, gallery GalleryFunc, storage file.Storage, opts ...Option) *Mirror {
	m := &Mirror{
		source:      source,
		gallery:     gallery,
		storage:     storage,
		concurrency: DefaultConcurrency,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type job struct {
	fileID     string
	dir        string
	transforms url.Values
}

// Sync mirrors every gallery image and its thumbnail. One failing file does
// not stop the others; the returned error joins ErrSyncIncomplete with
// every per-file failure.
func (m *Mirror) Sync(ctx context.Context, locale string) (Report, error) {
	items, err := m.gallery(ctx, locale)
	if err != nil {
		return Report{}, errors.Join(ErrListGallery, err)
	}

	present := map[string]map[string]bool{
		GalleryDir: m.stored(ctx, GalleryDir),
		ThumbsDir:  m.stored(ctx, ThumbsDir),
	}

	var jobs []job
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.FileID == "" || seen[item.FileID] {
			continue
		}
		seen[item.FileID] = true
		jobs = append(jobs,
			job{fileID: item.FileID, dir: GalleryDir},
			job{fileID: item.FileID, dir: ThumbsDir, transforms: directus.ThumbnailTransforms()},
		)
	}

	var (
		mu     sync.Mutex
		report Report
		errs   []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for _, j := range jobs {
		if !m.force && present[j.dir][file.SanitizeFilename(j.fileID)] {
			report.Skipped++
			continue
		}
		g.Go(func() error {
			err := m.copy(gctx, j)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				errs = append(errs, err)
				m.logger.WarnContext(gctx, "asset mirror failed",
					logger.Component("assets"),
					slog.String("file_id", j.fileID),
					slog.String("dir", j.dir),
					logger.Error(err),
				)
				return nil
			}
			report.Downloaded++
			return nil
		})
	}
	_ = g.Wait()

	m.logger.InfoContext(ctx, "asset mirror finished",
		logger.Component("assets"),
		slog.Int("downloaded", report.Downloaded),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	if len(errs) > 0 {
		return report, errors.Join(append([]error{ErrSyncIncomplete}, errs...)...)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// copy downloads one file and stores it.
func (m *Mirror) copy(ctx context.Context, j job) error {
	asset, err := m.source.DownloadAsset(ctx, j.fileID, j.transforms)
	if err != nil {
		return fmt.Errorf("download %s: %w", j.fileID, err)
	}
	defer func() { _ = asset.Body.Close() }()

	contentType := file.ContentType(asset.ContentType, "", nil)
	key := Key(j.dir, j.fileID, contentType)
	if _, err := m.storage.Put(ctx, key, asset.Body, asset.Size, contentType); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// stored returns the file IDs already mirrored in dir.
func (m *Mirror) stored(ctx context.Context, dir string) map[string]bool {
	out := make(map[string]bool)
	entries, err := m.storage.List(ctx, dir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		out[strings.TrimSuffix(e.Name, path.Ext(e.Name))] = true
	}
	return out
}

// Key returns the storage key of fileID in dir. Thumbnails are always webp.
func Key(dir, fileID, contentType string) string {
	name := file.SanitizeFilename(fileID)
	if dir == ThumbsDir {
		return path.Join(dir, name+".webp")
	}
	return path.Join(dir, name+file.ExtensionFor(contentType))
}
