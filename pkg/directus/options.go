package directus

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Marco22874/lares-frontend/pkg/cache"
)

// Option configures a Client.
type Option func(*Client)

// WithToken sends a static access token as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout bounds every request. Zero leaves requests bounded only by ctx.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithCache keeps successful item reads in an LRU of the given capacity for ttl.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(c *Client) {
		if capacity > 0 {
			c.cache = cache.NewLRUCache[string, []byte](capacity, cache.WithTTL(ttl))
		}
	}
}

// WithCircuitBreaker rejects reads with ErrUnavailable while the CMS keeps failing.
func WithCircuitBreaker(b *CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// WithLogger sets the logger for failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
