package cookie

import "errors"

// Errors returned by Manager. Callers reading consent or flash cookies
// treat all of them as "no value".
var (
	ErrNoSecret         = errors.New("cookie: no secret configured")
	ErrSecretTooShort   = errors.New("cookie: secret shorter than 32 bytes")
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrDecryptionFailed = errors.New("cookie: decryption failed")
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: invalid format")
)
