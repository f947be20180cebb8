package binder

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxFormSize caps form bodies.
const DefaultMaxFormSize = 64 << 10

// Form binds application/x-www-form-urlencoded or multipart/form-data values
// into fields tagged `form:"name"`. Uploaded files are ignored.
func Form() Func {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}

		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return formError(err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxFormSize); err != nil {
				return formError(err)
			}
			values = r.MultipartForm.Value
		default:
			return fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// Query binds URL query parameters into fields tagged `query:"name"`.
func Query() Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
