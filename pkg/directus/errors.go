package directus

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBaseURL  = errors.New("directus: invalid base url")
	ErrRequestFailed   = errors.New("directus: request failed")
	ErrDecodeResponse  = errors.New("directus: failed to decode response")
	ErrEncodeRequest   = errors.New("directus: failed to encode request")
	ErrUnavailable     = errors.New("directus: circuit breaker is open")
	ErrEmptyCollection = errors.New("directus: collection name is required")
	ErrEmptyFileID     = errors.New("directus: file id is required")
)

// submitFallbackMessage is used when a failed contact submission carries no message.
const submitFallbackMessage = "contact form submission failed"

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	// StatusText is the reason phrase sent by the server, e.g. "Not Found".
	StatusText string
	// Endpoint is the collection name or path the request was made for.
	Endpoint string
	// Message is the error text from the response body, if any.
	Message string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("directus api error: %d %s for %s", e.StatusCode, e.StatusText, e.Endpoint)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Temporary reports whether the failure is on the server side.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
