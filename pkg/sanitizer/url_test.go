package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marco22874/lares-frontend/pkg/sanitizer"
)

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "allows https", input: "https://example.com", expected: "https://example.com"},
		{name: "allows http", input: "http://example.com/path?q=1", expected: "http://example.com/path?q=1"},
		{name: "allows mailto", input: "mailto:info@lares.it", expected: "mailto:info@lares.it"},
		{name: "allows tel", input: "tel:+390612345678", expected: "tel:+390612345678"},
		{name: "keeps original case", input: "HTTPS://Example.com/Gallery", expected: "HTTPS://Example.com/Gallery"},
		{name: "trims surrounding whitespace", input: "  https://example.com  ", expected: "https://example.com"},
		{name: "allows relative path", input: "/it/contatti/", expected: "/it/contatti/"},
		{name: "allows fragment", input: "#main", expected: "#main"},
		{name: "allows protocol relative", input: "//cdn.example.com/a.js", expected: "//cdn.example.com/a.js"},
		{name: "keeps traversal-like relative path", input: "/../etc/passwd", expected: "/../etc/passwd"},
		{name: "blocks javascript", input: "javascript:alert(1)", expected: ""},
		{name: "blocks uppercase javascript", input: "JAVASCRIPT:alert(1)", expected: ""},
		{name: "blocks javascript with leading space", input: "  javascript:alert(1)", expected: ""},
		{name: "blocks data", input: "data:text/html,<script>alert(1)</script>", expected: ""},
		{name: "blocks vbscript", input: "vbscript:msgbox", expected: ""},
		{name: "blocks ftp", input: "ftp://example.com", expected: ""},
		{name: "blocks bare relative", input: "contatti", expected: ""},
		{name: "blocks host without scheme", input: "example.com", expected: ""},
		{name: "allows bare allowed scheme", input: "https:", expected: "https:"},
		{name: "blocks unparseable escape", input: "https://x/%zz", expected: ""},
		{name: "blocks control characters", input: "java\tscript:alert(1)", expected: ""},
		{name: "handles empty string", input: "", expected: ""},
		{name: "handles whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeURL(tt.input))
		})
	}
}
