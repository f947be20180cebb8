package i18n

import "slices"

// Locale is one of the languages the site is published in.
type Locale string

const (
	Italian Locale = "it"
	English Locale = "en"
	German  Locale = "de"
	French  Locale = "fr"
)

// Default is the locale used whenever a value outside the supported set is seen.
const Default = Italian

// supported keeps the order used for language switchers and hreflang links.
var supported = []Locale{Italian, English, German, French}

// Supported returns the supported locales, default first.
func Supported() []Locale {
	return slices.Clone(supported)
}

// SupportedStrings returns the supported locale codes as strings.
func SupportedStrings() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = string(l)
	}
	return out
}

// IsSupported reports whether s is exactly one of the supported locale codes.
func IsSupported(s string) bool {
	return slices.Contains(supported, Locale(s))
}

// Normalize maps s onto the supported set. Codes are matched exactly, so
// "DE" or "de-CH" become Default; use Negotiate for header values.
func Normalize(s string) Locale {
	if IsSupported(s) {
		return Locale(s)
	}
	return Default
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}
