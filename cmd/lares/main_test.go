package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/file"
	"github.com/Marco22874/lares-frontend/pkg/httpserver"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
)

func TestRootCommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "sync-assets", "check"}, names)
}

func TestRunChecks(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := runChecks(context.Background(), &out, map[string]httpserver.Check{
		"redis":    func(context.Context) error { return errors.New("connection refused") },
		"directus": func(context.Context) error { return nil },
	})
	require.ErrorIs(t, err, errUnhealthy)
	assert.Equal(t, "directus   ok\nredis      FAIL connection refused\n", out.String())

	out.Reset()
	require.NoError(t, runChecks(context.Background(), &out, map[string]httpserver.Check{
		"directus": func(context.Context) error { return nil },
	}))
}

func testSettings(t *testing.T, cmsURL string) *settings {
	t.Helper()
	return &settings{
		App: appConfig{
			Env:             "development",
			Name:            "lares",
			SiteName:        "Lares",
			ContactNotifyTo: "info@larescohousing.it",
		},
		Directus:  directus.Config{URL: cmsURL},
		RateLimit: ratelimiter.Config{Capacity: 5, RefillRate: 1, RefillInterval: time.Minute},
		Storage:   file.Config{Driver: file.DriverLocal, LocalDir: t.TempDir(), LocalURL: "/media/"},
	}
}

func TestAppHandler(t *testing.T) {
	t.Parallel()

	cms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/server/ping" {
			_, _ = w.Write([]byte("pong"))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(cms.Close)

	cfg := testSettings(t, cms.URL)
	cfg.Email.DevDir = t.TempDir()
	a, err := newApp(context.Background(), cfg, newLogger(cfg, io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	h, err := a.handler(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"directus":"ok"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/it/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCookieSecrets(t *testing.T) {
	t.Parallel()

	cfg := testSettings(t, "")
	assert.Equal(t, []string{devCookieSecret}, cfg.cookieSecrets())

	cfg.Cookie.Secrets = " first-secret-0123456789abcdef0123456789 , second "
	assert.Equal(t, []string{"first-secret-0123456789abcdef0123456789", "second"}, cfg.cookieSecrets())
}
