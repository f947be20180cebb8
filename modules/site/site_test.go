package site_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/handler"
	"github.com/Marco22874/lares-frontend/modules/site"
	"github.com/Marco22874/lares-frontend/pkg/consent"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/email"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
)

const testSecret = "lares-cohousing-site-test-secret-0001"

// fakeCMS answers the few Directus endpoints the site reads.
type fakeCMS struct {
	mu          sync.Mutex
	down        bool
	failSubmit  bool
	submissions []map[string]any
}

func (f *fakeCMS) setDown(v bool) {
	f.mu.Lock()
	f.down = v
	f.mu.Unlock()
}

func (f *fakeCMS) posted() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.submissions...)
}

func (f *fakeCMS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	down, failSubmit := f.down, f.failSubmit
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if down {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	data := func(v any) { _ = json.NewEncoder(w).Encode(map[string]any{"data": v}) }
	q := r.URL.Query()
	locale := q.Get("deep[translations][_filter][languages_code][_eq]")

	switch r.URL.Path {
	case "/items/pages":
		if q.Get("filter[slug][_eq]") != "about" {
			data([]any{})
			return
		}
		data([]map[string]any{{
			"id":   1,
			"slug": "about",
			"translations": []map[string]any{{
				"languages_code":   locale,
				"title":            "Chi siamo davvero",
				"content":          `<p>Benvenuti<script>alert(1)</script></p>`,
				"meta_description": "Una comunità",
			}},
		}})
	case "/items/site_settings":
		data(map[string]any{"site_name": "Lares", "translations": []any{}})
	case "/items/gallery":
		data([]map[string]any{{
			"id":    7,
			"image": "abc-123",
			"sort":  1,
			"translations": []map[string]any{{
				"languages_code": "it", "title": "Orto", "alt": "Orto comune", "caption": "Estate",
			}},
		}})
	case "/contact-form":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if failSubmit {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"errors":[{"message":"db down"}]}`))
			return
		}
		f.mu.Lock()
		f.submissions = append(f.submissions, body)
		id := len(f.submissions)
		f.mu.Unlock()
		data(map[string]any{"id": id})
	case "/server/ping":
		_, _ = w.Write([]byte(`pong`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type captureSender struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
}

func (c *captureSender) SendEmail(_ context.Context, p email.SendEmailParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sent = append(c.sent, p)
	c.mu.Unlock()
	return nil
}

func (c *captureSender) messages() []email.SendEmailParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]email.SendEmailParams(nil), c.sent...)
}

type testSite struct {
	cms     *fakeCMS
	sender  *captureSender
	cookies *cookie.Manager
	router  http.Handler
}

func newTestSite(t *testing.T, contactOpts ...site.ContactOption) *testSite {
	t.Helper()

	cms := &fakeCMS{}
	srv := httptest.NewServer(cms)
	t.Cleanup(srv.Close)

	client, err := directus.NewClient(srv.URL, directus.WithTimeout(2*time.Second))
	require.NoError(t, err)

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	sender := &captureSender{}
	notifier, err := site.NewEmailNotifier(sender, "info@larescohousing.it")
	require.NoError(t, err)

	submitter, err := contact.NewSubmitter(site.DirectusPoster(client), contact.WithNotifier(notifier))
	require.NoError(t, err)

	router := site.Router(site.RouterOptions{
		Pages:   site.NewPageService(client, cookies),
		Contact: site.NewContactService(submitter, cookies, contactOpts...),
		Consent: site.NewConsentService(cookies, nil),
		Health:  http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	})

	return &testSite{cms: cms, sender: sender, cookies: cookies, router: router}
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Anna Rossi"},
		"email":   {"anna@example.it"},
		"phone":   {"+39 333 1234567"},
		"subject": {"visit"},
		"message": {"Vorrei visitare la casa il prossimo mese."},
	}
}

func validJSON() string {
	return `{"name":"Anna Rossi","email":"anna@example.it","subject":"info","message":"Vorrei maggiori informazioni."}`
}

func TestPages(t *testing.T) {
	t.Parallel()
	s := newTestSite(t)

	t.Run("root redirects to negotiated locale", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-CH,de;q=0.9,en;q=0.5")
		rec := s.do(req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/de/", rec.Header().Get("Location"))

		rec = s.do(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "/it/", rec.Header().Get("Location"))
	})

	t.Run("cms page", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/it/chi-siamo/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h1>Chi siamo davvero</h1>")
		assert.Contains(t, body, "<title>Chi siamo davvero | Lares</title>")
		assert.Contains(t, body, "Benvenuti")
		assert.NotContains(t, body, "<script>alert")
		assert.Contains(t, body, `hreflang="de"`)
		assert.Contains(t, body, `id="cookie-banner"`)
	})

	t.Run("missing cms item falls back to nav label", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/en/services/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>Services</h1>")
	})

	t.Run("gallery", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/it/gallery/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `alt="Orto comune"`)
		assert.Contains(t, rec.Body.String(), "<figcaption>Estate</figcaption>")
	})

	t.Run("unknown slug and locale are 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.do(httptest.NewRequest(http.MethodGet, "/it/nowhere/", nil)).Code)
		assert.Equal(t, http.StatusNotFound, s.do(httptest.NewRequest(http.MethodGet, "/es/", nil)).Code)
		assert.Equal(t, http.StatusNotFound, s.do(httptest.NewRequest(http.MethodGet, "/it/contact/", nil)).Code)
	})

	t.Run("canonical trailing slash", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/it/contatti", nil))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/it/contatti/", rec.Header().Get("Location"))

		rec = s.do(httptest.NewRequest(http.MethodGet, "/fr", nil))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/fr/", rec.Header().Get("Location"))
	})

	t.Run("locale redirect stays on site", func(t *testing.T) {
		for _, target := range []string{"/%2Fevil.com", "/%5Cevil.com", "/%2F%2Fevil.com", "/es"} {
			rec := s.do(httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code, target)
			assert.Empty(t, rec.Header().Get("Location"), target)
		}
	})

	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	})
}

func TestPagesSurviveCMSOutage(t *testing.T) {
	t.Parallel()
	s := newTestSite(t)
	s.cms.setDown(true)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/it/contatti/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Contatti</h1>")
	assert.Contains(t, rec.Body.String(), `action="&#x2F;api&#x2F;contact?lang=it"`)
}

func TestContactJSON(t *testing.T) {
	t.Parallel()

	post := func(s *testSite, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact?lang=en", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return s.do(req)
	}

	t.Run("success posts once and notifies", func(t *testing.T) {
		t.Parallel()
		s := newTestSite(t)
		rec := post(s, validJSON())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"success","message":"Message sent successfully!"}}`, rec.Body.String())

		posted := s.cms.posted()
		require.Len(t, posted, 1)
		assert.Equal(t, "Anna Rossi", posted[0]["name"])
		assert.Equal(t, "", posted[0]["phone"])
		assert.NotContains(t, posted[0], "honeypot")

		sent := s.sender.messages()
		require.Len(t, sent, 1)
		assert.Equal(t, "info@larescohousing.it", sent[0].SendTo)
		assert.Equal(t, "anna@example.it", sent[0].ReplyTo)
		assert.Contains(t, sent[0].Subject, "Anna Rossi")
	})

	t.Run("invalid form", func(t *testing.T) {
		t.Parallel()
		s := newTestSite(t)
		rec := post(s, `{"name":"A","email":"not-an-email","subject":"spam","message":"short"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var resp struct {
			Data struct {
				Status string            `json:"status"`
				Errors map[string]string `json:"errors"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid", resp.Data.Status)
		assert.Len(t, resp.Data.Errors, 4)
		assert.Empty(t, s.cms.posted())
	})

	t.Run("honeypot", func(t *testing.T) {
		t.Parallel()
		s := newTestSite(t)
		body := strings.Replace(validJSON(), `{`, `{"honeypot":"http://spam.example",`, 1)
		rec := post(s, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid submission")
		assert.Empty(t, s.cms.posted())
	})

	t.Run("cms failure", func(t *testing.T) {
		t.Parallel()
		s := newTestSite(t)
		s.cms.mu.Lock()
		s.cms.failSubmit = true
		s.cms.mu.Unlock()

		rec := post(s, validJSON())
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
		assert.Empty(t, s.sender.messages())
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		t.Parallel()
		s := newTestSite(t)
		rec := post(s, `{"name":"Anna","admin":true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContactPlainForm(t *testing.T) {
	t.Parallel()
	s := newTestSite(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact?lang=it", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := s.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/it/contatti/#contact-status", rec.Header().Get("Location"))
	require.Len(t, s.cms.posted(), 1)

	page := httptest.NewRequest(http.MethodGet, "/it/contatti/", nil)
	for _, c := range rec.Result().Cookies() {
		page.AddCookie(c)
	}
	pageRec := s.do(page)
	require.Equal(t, http.StatusOK, pageRec.Code)
	assert.Contains(t, pageRec.Body.String(), "Messaggio inviato con successo!")
	assert.Contains(t, pageRec.Body.String(), "form-status--success")
}

func TestContactDataStar(t *testing.T) {
	t.Parallel()
	s := newTestSite(t)

	body := strings.Replace(validJSON(), `{`, `{"sending":true,`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/contact?lang=it", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.DataStarRequestHeader, "true")
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "datastar-patch-elements")
	assert.Contains(t, out, "#contact-status")
	assert.Contains(t, out, "form-status--success")
	assert.Contains(t, out, "datastar-patch-signals")
	assert.Contains(t, out, `"sending":false`)
	assert.Contains(t, out, `"message":""`)
}

func TestContactRateLimited(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)
	s := newTestSite(t, site.WithRateLimiter(bucket))

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact?lang=en", strings.NewReader(validJSON()))
		req.Header.Set("Content-Type", "application/json")
		return s.do(req)
	}

	assert.Equal(t, http.StatusOK, post().Code)

	rec := post()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many attempts")
	assert.Len(t, s.cms.posted(), 1)
}

func TestConsent(t *testing.T) {
	t.Parallel()
	s := newTestSite(t)

	t.Run("plain form redirects back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consent?lang=en", strings.NewReader("action=reject"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", "http://example.com/en/gallery/")
		req.Host = "example.com"
		rec := s.do(req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/en/gallery/", rec.Header().Get("Location"))

		page := httptest.NewRequest(http.MethodGet, "/en/gallery/", nil)
		for _, c := range rec.Result().Cookies() {
			page.AddCookie(c)
		}
		assert.NotContains(t, s.do(page).Body.String(), `id="cookie-banner"`)
	})

	t.Run("foreign referer goes home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consent?lang=de", strings.NewReader("action=accept"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", "https://evil.example/phish")
		rec := s.do(req)
		assert.Equal(t, "/de/", rec.Header().Get("Location"))
	})

	t.Run("referer outside the locale tree goes home", func(t *testing.T) {
		for _, ref := range []string{
			"http://example.com/%5Cevil.com",
			"http://example.com/it/%5C..%5Cevil.com",
			"http://example.com/%2F%2Fevil.com",
			"http://example.com/health",
			"http://example.com/",
		} {
			req := httptest.NewRequest(http.MethodPost, "/api/consent?lang=it", strings.NewReader("action=accept"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("Referer", ref)
			req.Host = "example.com"
			rec := s.do(req)

			require.Equal(t, http.StatusSeeOther, rec.Code, ref)
			assert.Equal(t, "/it/", rec.Header().Get("Location"), ref)
		}
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consent?lang=it", strings.NewReader(`{"action":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := s.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"choice":"all","message":"Preferenze salvate."}}`, rec.Body.String())

		var stored *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == consent.Key {
				stored = c
			}
		}
		require.NotNil(t, stored)
		assert.Equal(t, consent.MaxAge, stored.MaxAge)
	})

	t.Run("datastar removes banner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consent?lang=it&action=accept", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(handler.DataStarRequestHeader, "true")
		rec := s.do(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "#cookie-banner")
		assert.Contains(t, rec.Body.String(), "remove")
	})

	t.Run("unknown action", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/consent", strings.NewReader("action=dismiss"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, http.StatusBadRequest, s.do(req).Code)
	})
}
