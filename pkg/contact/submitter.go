package contact

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// Poster delivers a validated submission to the endpoint that stores it.
type Poster interface {
	PostContactForm(ctx context.Context, payload Payload) error
}

// PosterFunc adapts a function to Poster.
type PosterFunc func(ctx context.Context, payload Payload) error

// PostContactForm implements Poster.
func (f PosterFunc) PostContactForm(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

// Notifier is told about every submission the Poster accepted.
// Notification failures are logged and never fail the submission.
type Notifier interface {
	Notify(ctx context.Context, locale i18n.Locale, sub Submission) error
}

// Status classifies the outcome shown to the visitor.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInvalid Status = "invalid"
)

// Outcome is what the visitor sees after a submission attempt.
type Outcome struct {
	Status Status
	// Message is the localized status line.
	Message string
	// FieldErrors holds a localized message per invalid field.
	FieldErrors map[string]string
}

// Request is one submission attempt.
type Request struct {
	Submission Submission
	Locale     string
	// ClientKey identifies the visitor for in-flight tracking.
	// An empty key disables the check.
	ClientKey string
}

// Submitter orchestrates one contact form submission: bot check, whitelist
// validation, a single POST with no retry, and a localized outcome.
type Submitter struct {
	poster   Poster
	notifier Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithNotifier sets the hook called after a successful POST.
func WithNotifier(n Notifier) SubmitterOption {
	return func(s *Submitter) {
		s.notifier = n
	}
}

// WithLogger sets the logger used for transport and notification failures.
func WithLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSubmitter creates a Submitter posting through poster.
func NewSubmitter(poster Poster, opts ...SubmitterOption) (*Submitter, error) {
	if poster == nil {
		return nil, ErrNilPoster
	}
	s := &Submitter{
		poster:   poster,
		logger:   logger.Discard(),
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Submit runs one submission attempt.
//
// A filled honeypot returns ErrBotDetected with a generic error outcome and no
// network call. A form failing validation returns a *FormError with per-field
// messages and no network call. Otherwise the payload is posted exactly once;
// a failure returns an error wrapping ErrSubmissionFailed and a generic error
// outcome. The remote status is only logged.
func (s *Submitter) Submit(ctx context.Context, req Request) (Outcome, error) {
	locale := i18n.Normalize(req.Locale)
	sub := req.Submission.Trimmed()

	if sub.IsBot() {
		s.logger.InfoContext(ctx, "contact submission rejected",
			logger.Component("contact"),
			logger.Event("honeypot"),
		)
		return s.outcome(locale, StatusError, "form_bot"), ErrBotDetected
	}

	if result := sub.Validate(); !result.Valid {
		outcome := s.outcome(locale, StatusInvalid, "form_invalid")
		outcome.FieldErrors = make(map[string]string, len(result.Keys))
		for field, key := range result.Keys {
			outcome.FieldErrors[field] = i18n.T(string(locale), key)
		}
		return outcome, &FormError{Result: result}
	}

	release, ok := s.acquire(req.ClientKey)
	if !ok {
		return s.outcome(locale, StatusError, "form_busy"), ErrSubmissionInFlight
	}
	defer release()

	if err := s.poster.PostContactForm(ctx, sub.Payload()); err != nil {
		s.logger.ErrorContext(ctx, "contact submission failed",
			logger.Component("contact"),
			logger.Error(err),
		)
		return s.outcome(locale, StatusError, "form_error"), errors.Join(ErrSubmissionFailed, err)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, locale, sub); err != nil {
			s.logger.WarnContext(ctx, "contact notification failed",
				logger.Component("contact"),
				logger.Error(err),
			)
		}
	}

	return s.outcome(locale, StatusSuccess, "form_success"), nil
}

func (s *Submitter) outcome(locale i18n.Locale, status Status, key string) Outcome {
	return Outcome{Status: status, Message: i18n.T(string(locale), key)}
}

// acquire marks key as in flight. The returned func clears the mark.
func (s *Submitter) acquire(key string) (func(), bool) {
	if key == "" {
		return func() {}, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[key]; busy {
		return nil, false
	}
	s.inFlight[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}, true
}
