package site

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Marco22874/lares-frontend/handler"
	"github.com/Marco22874/lares-frontend/modules/site/views"
	"github.com/Marco22874/lares-frontend/pkg/binder"
	"github.com/Marco22874/lares-frontend/pkg/consent"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// ConsentService serves POST /api/consent.
type ConsentService struct {
	cookies *cookie.Manager
	logger  *slog.Logger
}

// NewConsentService creates a ConsentService storing choices in signed
// cookies.
func NewConsentService(cookies *cookie.Manager, log *slog.Logger) *ConsentService {
	if log == nil {
		log = logger.Discard()
	}
	return &ConsentService{cookies: cookies, logger: log}
}

// consentRequest carries the banner action. The no-script banner posts it
// as a form field; the datastar banner puts it in the query string.
type consentRequest struct {
	Action string `json:"action" form:"action" query:"action"`
}

// Handle returns the router mounted at /api/consent.
func (s *ConsentService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(i18n.Middleware(i18n.FromQuery("lang"), i18n.FromAcceptLanguage()))
	r.Post("/", handler.Wrap(s.apply,
		handler.WithBinders[handler.Context, consentRequest](binder.Query(), bindConsentBody),
	))
	return r
}

// bindConsentBody binds a form or JSON body when there is one.
func bindConsentBody(r *http.Request, v any) error {
	if r.ContentLength == 0 {
		return nil
	}
	if handler.IsDataStar(r) {
		return binder.JSON(binder.AllowUnknownFields())(r, v)
	}
	return binder.Auto()(r, v)
}

func (s *ConsentService) apply(ctx handler.Context, req consentRequest) handler.Response {
	r := ctx.Request()
	w := ctx.ResponseWriter()

	choice, ok := consent.ChoiceForAction(req.Action)
	if !ok {
		return handler.JSONError(handler.ErrBadRequest)
	}
	store := consent.NewStore(consent.NewCookieStorage(s.cookies, w, r), consent.WithLogger(s.logger))
	store.Set(choice)

	s.logger.DebugContext(ctx, "consent stored",
		logger.Component("consent"),
		slog.String("choice", choice.String()),
	)

	switch {
	case handler.IsDataStar(r):
		return handler.Templ(emptyComponent, handler.WithTarget("#"+views.ConsentBannerID), handler.WithPatchMode(handler.PatchRemove))
	case wantsJSON(r):
		return handler.JSON(map[string]string{
			"choice":  choice.String(),
			"message": i18n.T(string(i18n.GetLocale(ctx)), "consent_saved"),
		})
	default:
		return handler.Redirect(backTo(r), http.StatusSeeOther)
	}
}

// backTo returns the same-site page the banner was posted from, or the
// localized home page. Only paths under a supported locale are sent back.
func backTo(r *http.Request) string {
	home := i18n.LocalizedPath(string(i18n.GetLocale(r.Context())), i18n.RouteHome)
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return home
	}
	if strings.ContainsRune(ref.Path, '\\') || !strings.HasPrefix(ref.Path, "/") {
		return home
	}
	locale, _, _ := strings.Cut(ref.Path[1:], "/")
	if !i18n.IsSupported(locale) {
		return home
	}
	return ref.Path
}
