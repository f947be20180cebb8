package file

import "errors"

var (
	ErrInvalidPath = errors.New("file: invalid path")
	ErrNilReader   = errors.New("file: nil reader")

	ErrFileNotFound      = errors.New("file: not found")
	ErrDirectoryNotFound = errors.New("file: directory not found")
	ErrNotDirectory      = errors.New("file: path is not a directory")
	ErrIsDirectory       = errors.New("file: path is a directory")

	ErrFailedToWriteFile       = errors.New("file: failed to write")
	ErrFailedToDeleteFile      = errors.New("file: failed to delete")
	ErrFailedToCreateDirectory = errors.New("file: failed to create directory")
	ErrFailedToReadDirectory   = errors.New("file: failed to read directory")
	ErrFailedToStatPath        = errors.New("file: failed to stat path")
	ErrFailedToGetAbsolutePath = errors.New("file: failed to resolve absolute path")

	ErrBucketNotFound     = errors.New("file: bucket not found")
	ErrAccessDenied       = errors.New("file: access denied")
	ErrServiceUnavailable = errors.New("file: storage temporarily unavailable")

	ErrOperationTimeout  = errors.New("file: operation timed out")
	ErrOperationCanceled = errors.New("file: operation canceled")

	ErrInvalidConfig      = errors.New("file: invalid configuration")
	ErrFailedToLoadConfig = errors.New("file: failed to load AWS config")
)
