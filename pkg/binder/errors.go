package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrFailedToParseJSON    = errors.New("binder: failed to parse JSON body")
	ErrFailedToParseForm    = errors.New("binder: failed to parse form data")
	ErrFailedToParseQuery   = errors.New("binder: failed to parse query parameters")
	ErrBodyTooLarge         = errors.New("binder: request body too large")
)
