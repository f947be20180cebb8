package consent

import (
	"net/http"

	"github.com/Marco22874/lares-frontend/pkg/cookie"
)

// MaxAge is how long a choice is remembered, in seconds.
const MaxAge = 365 * 24 * 60 * 60

// CookieStorage keeps the choice in a signed cookie for one request/response
// pair. A value written during the request is visible to later reads.
type CookieStorage struct {
	cookies *cookie.Manager
	w       http.ResponseWriter
	r       *http.Request
	written map[string]string
	opts    []cookie.Option
}

// NewCookieStorage binds a cookie manager to the current exchange.
func NewCookieStorage(cookies *cookie.Manager, w http.ResponseWriter, r *http.Request, opts ...cookie.Option) *CookieStorage {
	return &CookieStorage{
		cookies: cookies,
		w:       w,
		r:       r,
		written: make(map[string]string),
		opts:    append([]cookie.Option{cookie.WithMaxAge(MaxAge)}, opts...),
	}
}

// Get returns the verified cookie value.
func (s *CookieStorage) Get(key string) (string, error) {
	if v, ok := s.written[key]; ok {
		return v, nil
	}
	return s.cookies.GetSigned(s.r, key)
}

// Set writes a signed cookie.
func (s *CookieStorage) Set(key, value string) error {
	if err := s.cookies.SetSigned(s.w, key, value, s.opts...); err != nil {
		return err
	}
	s.written[key] = value
	return nil
}
