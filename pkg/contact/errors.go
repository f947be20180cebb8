package contact

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrBotDetected is returned when the honeypot field was filled in.
	ErrBotDetected = errors.New("contact: bot detected")
	// ErrInvalidForm is matched by every *FormError.
	ErrInvalidForm = errors.New("contact: invalid form")
	// ErrSubmissionInFlight is returned while the same client has a submission pending.
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")
	// ErrSubmissionFailed wraps transport and remote failures of the POST.
	ErrSubmissionFailed = errors.New("contact: submission failed")
	// ErrNilPoster is returned by NewSubmitter without a Poster.
	ErrNilPoster = errors.New("contact: poster is nil")
)

// FormError carries the per-field failures of a rejected submission.
type FormError struct {
	Result FormResult
}

func (e *FormError) Error() string {
	fields := make([]string, 0, len(e.Result.Errors))
	for field := range e.Result.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "contact: invalid form: " + strings.Join(fields, ", ")
}

// Is makes errors.Is(err, ErrInvalidForm) match any *FormError.
func (e *FormError) Is(target error) bool {
	return target == ErrInvalidForm
}
