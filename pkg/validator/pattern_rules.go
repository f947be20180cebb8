package validator

import "regexp"

// MatchesPattern validates value against a precompiled whitelist pattern.
// The pattern must anchor both ends; an empty value is checked like any other.
func MatchesPattern(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains invalid characters",
			TranslationKey: KeyInvalid,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
