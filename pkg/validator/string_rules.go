package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Translation keys shared with the UI string tables.
const (
	KeyRequired = "form_required"
	KeyInvalid  = "form_invalid"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxRunesString validates that value holds at most max characters.
// Length is counted in runes so accented names are not penalised.
func MaxRunesString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("exceeds max length %d", max),
			TranslationKey: KeyInvalid,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// RuneLenBetween validates that value holds between min and max characters inclusive.
func RuneLenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains invalid characters",
			TranslationKey: KeyInvalid,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
