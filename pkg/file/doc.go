// Package file stores the local mirror of CMS assets.
//
// The sync-assets command downloads gallery images from Directus and writes
// them through a Storage, either a directory on disk (LocalStorage) or an S3
// compatible bucket (S3Storage). Paths are slash-separated keys relative to
// the storage root; CleanPath rejects keys that would escape it.
//
//	store, err := file.New(ctx, cfg.Storage)
//	if err != nil {
//		return err
//	}
//	if !store.Exists(ctx, key) {
//		_, err = store.Put(ctx, key, body, size, contentType)
//	}
package file
