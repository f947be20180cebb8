package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/clientip"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
)

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, ratelimiter.ErrStoreUnavailable
}

func (failingStore) Reset(context.Context, string) error { return errors.New("unavailable") }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
}

func post(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("limits per client ip", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		h := clientip.Middleware(ratelimiter.Middleware(b, ratelimiter.ByClientIP)(okHandler()))

		for range 3 {
			rec := post(h, "192.0.2.10:4000")
			require.Equal(t, http.StatusAccepted, rec.Code)
			assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		}

		rec := post(h, "192.0.2.10:4001")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

		assert.Equal(t, http.StatusAccepted, post(h, "192.0.2.11:4000").Code)
	})

	t.Run("custom limited handler", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		limited := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("riprova più tardi"))
		})
		h := ratelimiter.Middleware(b, nil, ratelimiter.WithLimitedHandler(limited))(okHandler())

		for range 3 {
			post(h, "192.0.2.20:1")
		}
		rec := post(h, "192.0.2.20:1")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "riprova più tardi", rec.Body.String())
	})

	t.Run("empty key skips limiting", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock())
		h := ratelimiter.Middleware(b, func(*http.Request) string { return "" })(okHandler())
		for range 5 {
			assert.Equal(t, http.StatusAccepted, post(h, "192.0.2.30:1").Code)
		}
	})

	t.Run("store failure fails open by default", func(t *testing.T) {
		t.Parallel()
		b, err := ratelimiter.NewBucket(failingStore{}, contactLimit)
		require.NoError(t, err)

		open := ratelimiter.Middleware(b, ratelimiter.ByClientIP)(okHandler())
		assert.Equal(t, http.StatusAccepted, post(open, "192.0.2.40:1").Code)

		closed := ratelimiter.Middleware(b, ratelimiter.ByClientIP, ratelimiter.WithFailClosed())(okHandler())
		assert.Equal(t, http.StatusServiceUnavailable, post(closed, "192.0.2.40:1").Code)
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "192.0.2.50:1"

	key := ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath)(req)
	assert.Equal(t, "192.0.2.50:/api/contact", key)

	long := ratelimiter.Composite(func(*http.Request) string { return strings.Repeat("x", 80) })(req)
	assert.NotEmpty(t, long)
	assert.LessOrEqual(t, len(long), 16)

	assert.Empty(t, ratelimiter.Composite()(req))
}
