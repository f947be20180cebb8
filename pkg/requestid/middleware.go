package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	// Header carries the request ID in both directions.
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type config struct {
	trustHeader bool
	generate    func() string
}

// Option configures New.
type Option func(*config)

// WithTrustedHeader controls whether an inbound X-Request-ID is reused.
// The default is true; set it to false when the site is exposed directly.
func WithTrustedHeader(trust bool) Option {
	return func(c *config) { c.trustHeader = trust }
}

// WithGenerator replaces the UUID generator. Used in tests.
func WithGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generate = fn
		}
	}
}

// New returns a middleware that assigns every request an ID, echoes it in
// the response header and stores it in the request context.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{trustHeader: true, generate: uuid.NewString}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cfg.trustHeader {
				id = r.Header.Get(Header)
			}
			if !valid(id) {
				id = cfg.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
