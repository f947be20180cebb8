package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/Marco22874/lares-frontend/pkg/logger"
	"github.com/Marco22874/lares-frontend/pkg/requestid"
)

// ErrorPageParams feeds the full-page error component.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
	RetryURL   string
}

// ErrorToastParams feeds the inline error fragment sent to datastar clients.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchInner.
	ToastMode datastar.ElementPatchMode

	// Translate turns an error key into a visitor-facing message. Keys are
	// shown verbatim when nil.
	Translate func(ctx context.Context, key string) string
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternal.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Key = "validation_error"
	}

	info.Message = info.Key
	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	} else {
		info.Type = "error"
		info.LogLevel = slog.LevelError
	}
	return info
}

// NewErrorHandler renders a full error page for regular requests and an
// error fragment for datastar requests. Every error is logged with the
// request ID; the visitor only sees the translated key.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchInner
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		if cfg.Translate != nil {
			info.Message = cfg.Translate(r.Context(), info.Key)
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case !IsDataStar(r) && cfg.ErrorPage != nil:
			resp = TemplStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
				StatusCode: info.StatusCode,
				Message:    info.Message,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			}))
		default:
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.RequestID(reqID),
			)
		}
	}
}
