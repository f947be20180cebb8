package directus_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/directus"
)

type page struct {
	ID           int    `json:"id"`
	Slug         string `json:"slug"`
	Translations []struct {
		directus.Translation
		Title string `json:"title"`
	} `json:"translations"`
}

func newClient(t *testing.T, handler http.HandlerFunc, opts ...directus.Option) *directus.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := directus.NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func writeData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	c, err := directus.NewClient("")
	require.NoError(t, err)
	assert.Equal(t, directus.DefaultBaseURL, c.BaseURL())

	c, err = directus.NewClient("https://cms.lares.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://cms.lares.example", c.BaseURL())

	for _, raw := range []string{"cms.lares.example", "ftp://cms.lares.example", "http://"} {
		_, err := directus.NewClient(raw)
		assert.ErrorIs(t, err, directus.ErrInvalidBaseURL, raw)
	}
}

func TestGetCollection(t *testing.T) {
	t.Parallel()

	t.Run("joins translation for locale", func(t *testing.T) {
		t.Parallel()
		queries := make(chan url.Values, 1)
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/items/pages", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			queries <- r.URL.Query()
			writeData(t, w, []map[string]any{
				{"id": 1, "slug": "chi-siamo", "translations": []map[string]any{
					{"id": 10, "languages_code": "en", "title": "About"},
				}},
			})
		})

		pages, err := directus.GetCollection[page](context.Background(), c, "pages", "en", url.Values{"sort": {"-id"}})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "chi-siamo", pages[0].Slug)
		assert.Equal(t, "About", pages[0].Translations[0].Title)
		assert.Equal(t, "en", pages[0].Translations[0].Code())

		got := <-queries
		assert.Equal(t, "en", got.Get("deep[translations][_filter][languages_code][_eq]"))
		assert.Equal(t, "*,translations.*", got.Get("fields"))
		assert.Equal(t, "-id", got.Get("sort"))
	})

	t.Run("unknown locale reads default", func(t *testing.T) {
		t.Parallel()
		locales := make(chan string, 1)
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			locales <- r.URL.Query().Get("deep[translations][_filter][languages_code][_eq]")
			writeData(t, w, []any{})
		})

		pages, err := directus.GetCollection[page](context.Background(), c, "pages", "es", nil)
		require.NoError(t, err)
		assert.Empty(t, pages)
		assert.Equal(t, "it", <-locales)
	})

	t.Run("bearer token", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
			writeData(t, w, []any{})
		}, directus.WithToken("s3cret"))

		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		require.NoError(t, err)
	})

	t.Run("non-2xx is an api error", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<html>oops</html>")
		})

		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		var apiErr *directus.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "pages", apiErr.Endpoint)
		assert.Empty(t, apiErr.Message)
		assert.Equal(t, "directus api error: 500 Internal Server Error for pages", err.Error())
	})

	t.Run("directus error body", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"errors":[{"message":"You don't have permission to access this."}]}`)
		})

		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		var apiErr *directus.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "You don't have permission to access this.", apiErr.Message)
		assert.False(t, apiErr.Temporary())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		c, err := directus.NewClient("")
		require.NoError(t, err)
		_, err = directus.GetCollection[page](context.Background(), c, "", "it", nil)
		assert.ErrorIs(t, err, directus.ErrEmptyCollection)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data": [`)
		})
		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		assert.ErrorIs(t, err, directus.ErrDecodeResponse)
	})
}

func TestGetItemBySlug(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("limit"))
		if q.Get("filter[slug][_eq]") == "chi-siamo" {
			writeData(t, w, []map[string]any{{"id": 1, "slug": "chi-siamo"}})
			return
		}
		writeData(t, w, []any{})
	})

	item, err := directus.GetItemBySlug[page](context.Background(), c, "pages", "chi-siamo", "de")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 1, item.ID)

	item, err = directus.GetItemBySlug[page](context.Background(), c, "pages", "missing", "de")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestGetSiteSettings(t *testing.T) {
	t.Parallel()

	type settings struct {
		SiteName string `json:"site_name"`
	}

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/site_settings", r.URL.Path)
		assert.Equal(t, "fr", r.URL.Query().Get("deep[translations][_filter][languages_code][_eq]"))
		writeData(t, w, map[string]any{"site_name": "Lares"})
	})

	s, err := directus.GetSiteSettings[settings](context.Background(), c, "fr")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Lares", s.SiteName)
}

func TestAssetURL(t *testing.T) {
	t.Parallel()

	c, err := directus.NewClient("https://cms.lares.example")
	require.NoError(t, err)

	assert.Empty(t, c.AssetURL("", url.Values{"width": {"100"}}))
	assert.Equal(t, "https://cms.lares.example/assets/abc-123", c.AssetURL("abc-123", nil))
	assert.Equal(t,
		"https://cms.lares.example/assets/abc-123?quality=80&width=800",
		c.AssetURL("abc-123", url.Values{"width": {"800"}, "quality": {"80"}}),
	)
}

func TestSubmitContactForm(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"name": "Marco", "email": "marco@example.com", "phone": "",
		"subject": "info", "message": "Vorrei informazioni.",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/contact-form", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, payload, body)
			_, _ = io.WriteString(w, `{"success":true}`)
		})

		res, err := c.SubmitContactForm(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, true, res["success"])
	})

	t.Run("server message", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"message":"Invalid email"}`)
		})

		_, err := c.SubmitContactForm(context.Background(), payload)
		var apiErr *directus.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid email", apiErr.Message)
		assert.Equal(t, "contact-form", apiErr.Endpoint)
	})

	t.Run("unparsable error body falls back", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "bad gateway")
		})

		_, err := c.SubmitContactForm(context.Background(), payload)
		var apiErr *directus.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "contact form submission failed", apiErr.Message)
		assert.True(t, apiErr.Temporary())
	})

	t.Run("empty success body", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		res, err := c.SubmitContactForm(context.Background(), payload)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("not retried", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.SubmitContactForm(context.Background(), payload)
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClientCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeData(t, w, []map[string]any{{"id": 1}})
	}, directus.WithCache(8, time.Minute))

	for range 3 {
		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := directus.GetCollection[page](context.Background(), c, "pages", "en", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())

	c.Invalidate()
	_, err = directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientCircuitBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, directus.WithCircuitBreaker(directus.NewCircuitBreaker(2, 1, time.Hour)))

	for range 2 {
		_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
		require.Error(t, err)
	}
	_, err := directus.GetCollection[page](context.Background(), c, "pages", "it", nil)
	assert.ErrorIs(t, err, directus.ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPing(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/server/ping" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "pong")
	})
	require.NoError(t, c.Ping(context.Background()))

	down := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Ping(context.Background()))
}

func TestDownloadAsset(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/abc" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "480", r.URL.Query().Get("width"))
		w.Header().Set("Content-Type", "image/webp")
		_, _ = io.WriteString(w, "RIFF....WEBP")
	})

	asset, err := c.DownloadAsset(context.Background(), "abc", url.Values{"width": {"480"}})
	require.NoError(t, err)
	defer asset.Body.Close()
	body, err := io.ReadAll(asset.Body)
	require.NoError(t, err)
	assert.Equal(t, "RIFF....WEBP", string(body))
	assert.Equal(t, "image/webp", asset.ContentType)

	_, err = c.DownloadAsset(context.Background(), "", nil)
	assert.ErrorIs(t, err, directus.ErrEmptyFileID)

	_, err = c.DownloadAsset(context.Background(), "missing", nil)
	assert.True(t, directus.IsNotFound(err))
	assert.False(t, directus.IsNotFound(errors.New("other")))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c, err := directus.NewFromConfig(directus.Config{
		URL:             srv.URL,
		Token:           "static-token",
		Timeout:         time.Second,
		BreakerFailures: 1,
		BreakerRecovery: time.Hour,
	})
	require.NoError(t, err)

	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Bearer static-token", auth.Load())

	err = c.Ping(context.Background())
	require.ErrorIs(t, err, directus.ErrUnavailable)

	_, err = directus.NewFromConfig(directus.Config{URL: "ftp://cms"})
	require.ErrorIs(t, err, directus.ErrInvalidBaseURL)
}
