package site

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/Marco22874/lares-frontend/handler"
	"github.com/Marco22874/lares-frontend/modules/site/views"
	"github.com/Marco22874/lares-frontend/pkg/consent"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// contactFlashKey names the flash carrying a no-script submission outcome.
const contactFlashKey = "contact"

// PageService serves the localized pages.
type PageService struct {
	cms      *directus.Client
	cookies  *cookie.Manager
	errors   handler.ErrorHandler[handler.Context]
	logger   *slog.Logger
	siteName string
}

// PageOption configures a PageService.
type PageOption func(*PageService)

// WithPageLogger sets the logger.
func WithPageLogger(l *slog.Logger) PageOption {
	return func(s *PageService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPageErrorHandler sets the handler for 404s and render failures.
func WithPageErrorHandler(h handler.ErrorHandler[handler.Context]) PageOption {
	return func(s *PageService) {
		if h != nil {
			s.errors = h
		}
	}
}

// WithSiteName sets the title suffix used when the CMS has none.
func WithSiteName(name string) PageOption {
	return func(s *PageService) { s.siteName = name }
}

// NewPageService creates a PageService reading from cms.
func NewPageService(cms *directus.Client, cookies *cookie.Manager, opts ...PageOption) *PageService {
	s := &PageService{
		cms:      cms,
		cookies:  cookies,
		logger:   logger.Discard(),
		siteName: "Lares Cohousing",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errors == nil {
		s.errors = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
			Translate:  TranslateError,
		})
	}
	return s
}

// Handle returns the page router:
//
//	GET /                   redirect to the negotiated locale
//	GET /{locale}           redirect to /{locale}/
//	GET /{locale}/{slug}/   the page of the route the slug names
func (s *PageService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(consent.Middleware(s.cookies))
	r.Use(i18n.Middleware(i18n.FromPath(), i18n.FromAcceptLanguage()))

	r.Get("/", RedirectToLocale)
	r.Get("/{locale}", func(w http.ResponseWriter, r *http.Request) {
		locale := chi.URLParam(r, "locale")
		if !i18n.IsSupported(locale) {
			s.errors(handler.NewContext(w, r), handler.ErrNotFound)
			return
		}
		http.Redirect(w, r, i18n.LocalizedPath(locale, i18n.RouteHome), http.StatusMovedPermanently)
	})
	r.Get("/{locale}/*", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errors),
	))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errors(handler.NewContext(w, r), handler.ErrNotFound)
	})
	return r
}

// RedirectToLocale sends the visitor to the home page in the locale their
// Accept-Language prefers.
func RedirectToLocale(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Negotiate(r.Header.Get("Accept-Language"))
	w.Header().Add("Vary", "Accept-Language")
	http.Redirect(w, r, i18n.LocalizedPath(string(locale), i18n.RouteHome), http.StatusFound)
}

func (s *PageService) page(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	raw := chi.URLParam(r, "locale")
	if !i18n.IsSupported(raw) {
		return handler.Error(handler.ErrNotFound)
	}
	locale := i18n.Locale(raw)

	rest := chi.URLParam(r, "*")
	if rest != "" && !strings.HasSuffix(rest, "/") {
		return handler.Redirect(r.URL.Path+"/", http.StatusMovedPermanently)
	}
	route, ok := i18n.RouteFromSlug(raw, rest)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}

	content := s.loadPage(ctx, locale, route)

	var extra templ.Component
	switch route {
	case i18n.RouteContact:
		extra = views.ContactForm(locale, s.contactFlash(ctx.ResponseWriter(), r))
	case i18n.RouteGallery:
		extra = views.Gallery(s.loadGallery(ctx, locale))
	}

	return handler.Templ(views.Layout(views.LayoutData{
		Locale:          locale,
		Route:           route,
		Title:           content.Title,
		SiteName:        content.SiteName,
		MetaDescription: content.MetaDescription,
		ShowBanner:      !consent.FromContext(ctx).Decided(),
	}, views.Page(views.PageView{
		Title: content.Title,
		Body:  content.Body,
		Extra: extra,
	})))
}

// contactFlash returns the outcome left by a no-script submission, if any.
func (s *PageService) contactFlash(w http.ResponseWriter, r *http.Request) contact.Outcome {
	var outcome contact.Outcome
	if s.cookies == nil {
		return outcome
	}
	if err := s.cookies.GetFlash(w, r, contactFlashKey, &outcome); err != nil {
		return contact.Outcome{}
	}
	return outcome
}

// TranslateError maps an HTTPError key onto its UI string in the request
// locale.
func TranslateError(ctx context.Context, key string) string {
	return i18n.T(string(i18n.GetLocale(ctx)), "error_"+key)
}
