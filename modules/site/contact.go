package site

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Marco22874/lares-frontend/handler"
	"github.com/Marco22874/lares-frontend/modules/site/views"
	"github.com/Marco22874/lares-frontend/pkg/binder"
	"github.com/Marco22874/lares-frontend/pkg/clientip"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
)

// ContactService serves POST /api/contact for three kinds of client:
// datastar (status fragment patch), JSON (status envelope) and plain
// forms (flash cookie and redirect back to the contact page).
type ContactService struct {
	submitter *contact.Submitter
	cookies   *cookie.Manager
	limiter   *ratelimiter.Bucket
	errors    handler.ErrorHandler[handler.Context]
	logger    *slog.Logger
}

// ContactOption configures a ContactService.
type ContactOption func(*ContactService)

// WithRateLimiter limits submissions per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) ContactOption {
	return func(s *ContactService) { s.limiter = b }
}

// WithContactLogger sets the logger.
func WithContactLogger(l *slog.Logger) ContactOption {
	return func(s *ContactService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithContactErrorHandler sets the handler for binding failures.
func WithContactErrorHandler(h handler.ErrorHandler[handler.Context]) ContactOption {
	return func(s *ContactService) {
		if h != nil {
			s.errors = h
		}
	}
}

// NewContactService creates a ContactService. cookies may be nil, in which
// case plain form posts are redirected without a status message.
func NewContactService(submitter *contact.Submitter, cookies *cookie.Manager, opts ...ContactOption) *ContactService {
	s := &ContactService{
		submitter: submitter,
		cookies:   cookies,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errors == nil {
		s.errors = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
			ErrorPage:   views.ErrorPage,
			ErrorToast:  views.ErrorToast,
			ToastTarget: "#" + views.ContactStatusID,
			Translate:   TranslateError,
		})
	}
	return s
}

// Handle returns the router mounted at /api/contact.
func (s *ContactService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(i18n.Middleware(i18n.FromQuery("lang"), i18n.FromAcceptLanguage()))
	if s.limiter != nil {
		r.Use(ratelimiter.Middleware(s.limiter, clientKey,
			ratelimiter.WithLimitedHandler(http.HandlerFunc(s.limited)),
			ratelimiter.WithLogger(s.logger),
		))
	}
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, contact.Submission](bindSubmission),
		handler.WithErrorHandler[handler.Context, contact.Submission](s.errors),
	))
	return r
}

// bindSubmission reads datastar signals, JSON or form posts. Datastar sends
// every signal on the page, so unknown fields are allowed there.
func bindSubmission(r *http.Request, v any) error {
	if handler.IsDataStar(r) {
		return binder.JSON(binder.AllowUnknownFields())(r, v)
	}
	return binder.Auto()(r, v)
}

// clientKey identifies the visitor for rate limiting and in-flight checks.
func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

func (s *ContactService) submit(ctx handler.Context, sub contact.Submission) handler.Response {
	r := ctx.Request()
	locale := i18n.GetLocale(ctx)

	outcome, err := s.submitter.Submit(ctx, contact.Request{
		Submission: sub,
		Locale:     string(locale),
		ClientKey:  clientKey(r),
	})
	return s.respond(r, locale, outcome, statusFor(err))
}

// statusFor maps a submission error onto the HTTP status of JSON answers.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, contact.ErrInvalidForm):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrBotDetected):
		return http.StatusBadRequest
	case errors.Is(err, contact.ErrSubmissionInFlight):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// contactResponse is the JSON shape of an outcome.
type contactResponse struct {
	Status  contact.Status    `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (s *ContactService) respond(r *http.Request, locale i18n.Locale, outcome contact.Outcome, status int) handler.Response {
	switch {
	case handler.IsDataStar(r):
		signals := map[string]any{"sending": false}
		if outcome.Status == contact.StatusSuccess {
			for _, f := range contact.Fields {
				signals[string(f)] = ""
			}
		}
		return handler.WithSignals(
			handler.Templ(views.ContactStatus(outcome), handler.WithTarget("#"+views.ContactStatusID)),
			signals,
		)

	case wantsJSON(r):
		body := contactResponse{Status: outcome.Status, Message: outcome.Message, Errors: outcome.FieldErrors}
		return handler.JSON(body, handler.WithJSONStatus(status))

	default:
		return handler.ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
			if s.cookies != nil {
				if err := s.cookies.SetFlash(w, contactFlashKey, outcome); err != nil {
					s.logger.WarnContext(r.Context(), "failed to set contact flash",
						logger.Component("contact"),
						logger.Error(err),
					)
				}
			}
			target := i18n.LocalizedPath(string(locale), i18n.RouteContact) + "#" + views.ContactStatusID
			http.Redirect(w, r, target, http.StatusSeeOther)
			return nil
		})
	}
}

// limited answers a rate-limited submission in the client's format.
func (s *ContactService) limited(w http.ResponseWriter, r *http.Request) {
	locale := i18n.GetLocale(r.Context())
	seconds := w.Header().Get("Retry-After")
	if seconds == "" {
		seconds = "60"
	}
	outcome := contact.Outcome{
		Status:  contact.StatusError,
		Message: i18n.T(string(locale), "form_rate_limited", "seconds", seconds),
	}
	if err := s.respond(r, locale, outcome, http.StatusTooManyRequests).Render(w, r); err != nil {
		s.errors(handler.NewContext(w, r), err)
	}
}

// wantsJSON reports whether the client posted JSON or asked for it.
func wantsJSON(r *http.Request) bool {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mt == "application/json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

