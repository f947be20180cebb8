package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Func binds request data into v, which must be a pointer to a struct.
type Func func(r *http.Request, v any) error

// Auto picks JSON or Form from the Content-Type header, so one endpoint can
// serve both script and no-script clients.
func Auto() Func {
	jsonBinder := JSON()
	formBinder := Form()
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		switch mediaType {
		case "application/json":
			return jsonBinder(r, v)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}

func mediaTypeOf(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ct)
	}
	return mediaType, nil
}
