package assets

import "errors"

var (
	// ErrSyncIncomplete is joined with the per-file errors when any file
	// could not be mirrored.
	ErrSyncIncomplete = errors.New("assets: sync incomplete")
	// ErrListGallery is returned when the gallery cannot be read.
	ErrListGallery = errors.New("assets: failed to list gallery")
)
