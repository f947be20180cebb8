package sanitizer

import (
	"regexp"
	"strings"
)

// htmlTagRegex matches a single tag: a literal '<' up to the next '>'.
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// htmlEntities maps every HTML-significant character to its entity.
// The slash and backtick are included so encoded text is also safe inside
// unquoted attribute values.
var htmlEntities = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#96;",
)

// EncodeHTML replaces each of & < > " ' / ` with its HTML entity.
// All other characters pass through unchanged.
func EncodeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEntities.Replace(s)
}

// StripHTML removes every <...> run from s and keeps the text between tags.
// It is not an HTML parser and must be paired with EncodeHTML: input without
// matched angle brackets passes through untouched.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlTagRegex.ReplaceAllString(s, "")
}

// SanitizeInput strips tags and then encodes the remaining text.
// Apply it to any user-supplied text before echoing it back into HTML.
func SanitizeInput(s string) string {
	return sanitizeInput(s)
}

var sanitizeInput = Compose(StripHTML, EncodeHTML)
