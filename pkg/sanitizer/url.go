package sanitizer

import (
	"net/url"
	"slices"
	"strings"
)

// allowedURLSchemes lists the schemes SanitizeURL lets through.
var allowedURLSchemes = []string{"http", "https", "mailto", "tel"}

// SanitizeURL returns the trimmed URL when it is safe to place into an href
// or src attribute, and an empty string otherwise.
//
// Absolute URLs must use one of http, https, mailto or tel. Values that do not
// parse as absolute URLs are accepted only when they start with "/" or "#".
// Relative references are not checked further, so "/../x" is returned as is.
func SanitizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if scheme, ok := absoluteScheme(strings.ToLower(trimmed)); ok {
		if slices.Contains(allowedURLSchemes, scheme) {
			return trimmed
		}
		return ""
	}

	if strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	return ""
}

// absoluteScheme reports the scheme of s when s parses as an absolute URL.
// net/url is stricter than a browser's URL parser about escapes and looser
// about empty hosts: "https://x/%zz" fails to parse and is rejected, while a
// bare "https:" is accepted. Neither case lets an unsafe scheme through.
func absoluteScheme(s string) (string, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return "", false
	}
	// "//host/path" and "/path" parse without a scheme and are handled as
	// relative references by the caller.
	return u.Scheme, true
}
