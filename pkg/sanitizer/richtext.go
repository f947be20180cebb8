package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy     *bluemonday.Policy
	richTextPolicyOnce sync.Once
)

func getRichTextPolicy() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowURLSchemes(allowedURLSchemes...)
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		richTextPolicy = p
	})
	return richTextPolicy
}

// SanitizeRichText cleans HTML authored in the CMS so it can be rendered
// unescaped. Formatting, links and images survive; scripts, event handlers and
// links with schemes other than http, https, mailto and tel are removed.
func SanitizeRichText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	return getRichTextPolicy().Sanitize(trimmed)
}
