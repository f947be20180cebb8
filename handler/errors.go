package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/Marco22874/lares-frontend/pkg/binder"
)

var (
	ErrNilResponse = errors.New("handler: nil response")
	ErrNotDataStar = errors.New("handler: not a datastar request")
)

// HTTPError is an error with a status code and a translation key shown to
// the visitor.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

// NewHTTPError returns an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Key, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Key)
}

func (e HTTPError) Unwrap() error { return e.Err }

// Wrap returns a copy of e carrying err as its cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.Err = err
	return e
}

// Is matches another HTTPError with the same code and key.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	return ok && t.Code == e.Code && t.Key == e.Key
}

var (
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound             = NewHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed     = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrConflict             = NewHTTPError(http.StatusConflict, "conflict")
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrTooManyRequests      = NewHTTPError(http.StatusTooManyRequests, "too_many_requests")
	ErrInternal             = NewHTTPError(http.StatusInternalServerError, "internal_error")
	ErrBadGateway           = NewHTTPError(http.StatusBadGateway, "bad_gateway")
	ErrServiceUnavailable   = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")
)

// ValidationError maps field names to messages.
type ValidationError url.Values

// NewValidationError returns an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, msgs[0])
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) { url.Values(e).Add(field, message) }

// Get returns the first message for field.
func (e ValidationError) Get(field string) string { return url.Values(e).Get(field) }

// Has reports whether field has messages.
func (e ValidationError) Has(field string) bool { return len(e[field]) > 0 }

// IsEmpty reports whether there are no messages.
func (e ValidationError) IsEmpty() bool { return len(e) == 0 }

// bindError maps binder failures to HTTP errors.
func bindError(err error) error {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType.Wrap(err)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large").Wrap(err)
	default:
		return ErrBadRequest.Wrap(err)
	}
}
