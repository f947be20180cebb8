// Package assets mirrors the CMS files referenced by the gallery into a
// file.Storage, so the site can serve them from local disk or S3 when the
// CMS is slow or offline.
//
// Full images are stored under "gallery/{fileID}{ext}" and thumbnails under
// "thumbs/{fileID}.webp". Files already present are skipped unless the
// mirror was built with WithForce.
//
//	m := assets.NewMirror(cms, storage, assets.WithConcurrency(4))
//	report, err := m.Sync(ctx, "it")
package assets
