package sanitizer_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Marco22874/lares-frontend/pkg/sanitizer"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	bareAmpersand     = regexp.MustCompile(`&(?:[^a-z#]|$)`)
	markupishAlphabet = gen.OneConstOf("<", ">", "&", `"`, "'", "/", "`", "a", "b", " ", "script", "onerror=", "=", "é")
)

func markupString() gopter.Gen {
	return gen.SliceOf(markupishAlphabet).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestSanitizerProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	properties := gopter.NewProperties(params)

	properties.Property("encoded text has no raw markup characters", prop.ForAll(
		func(s string) bool {
			out := sanitizer.EncodeHTML(s)
			return !strings.ContainsAny(out, `<>"'`) && !bareAmpersand.MatchString(out)
		},
		markupString(),
	))

	properties.Property("encoding arbitrary unicode never leaves raw markup", prop.ForAll(
		func(s string) bool {
			return !strings.ContainsAny(sanitizer.EncodeHTML(s), `<>"'`)
		},
		gen.AnyString(),
	))

	properties.Property("re-encoding never reintroduces markup", prop.ForAll(
		func(s string) bool {
			twice := sanitizer.EncodeHTML(sanitizer.EncodeHTML(s))
			return !strings.ContainsAny(twice, `<>"'`)
		},
		markupString(),
	))

	properties.Property("stripped text has no tags", prop.ForAll(
		func(s string) bool {
			return !tagPattern.MatchString(sanitizer.StripHTML(s))
		},
		markupString(),
	))

	properties.Property("sanitized input is stripped and encoded", prop.ForAll(
		func(s string) bool {
			out := sanitizer.SanitizeInput(s)
			return !strings.ContainsAny(out, "<>") && !tagPattern.MatchString(out)
		},
		markupString(),
	))

	properties.Property("text after a tag survives sanitization", prop.ForAll(
		func(attr, text string) bool {
			out := sanitizer.SanitizeInput("<img src=x " + attr + ">" + text)
			return out == sanitizer.EncodeHTML(text)
		},
		gen.RegexMatch(`^[a-z]{1,10}=[a-z0-9()]{0,10}$`),
		gen.AlphaString(),
	))

	properties.Property("dangerous schemes are always rejected", prop.ForAll(
		func(scheme, rest string) bool {
			return sanitizer.SanitizeURL(scheme+":"+rest) == ""
		},
		gen.OneConstOf("javascript", "JavaScript", "data", "DATA", "vbscript", "file"),
		gen.AlphaString(),
	))

	properties.Property("allowed schemes are returned trimmed and unchanged", prop.ForAll(
		func(scheme, host string) bool {
			raw := scheme + "://" + host + ".it/"
			return sanitizer.SanitizeURL("  "+raw+"\n") == raw
		},
		gen.OneConstOf("http", "https", "HTTPS"),
		gen.RegexMatch(`^[a-z]{1,12}$`),
	))

	properties.Property("relative references are kept", prop.ForAll(
		func(prefix, rest string) bool {
			raw := prefix + rest
			return sanitizer.SanitizeURL(raw) == raw
		},
		gen.OneConstOf("/", "#"),
		gen.RegexMatch(`^[a-z0-9/\-]{0,20}$`),
	))

	properties.TestingRun(t)
}
