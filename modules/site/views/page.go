package views

import (
	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/sanitizer"
)

// PageView is the main content of a CMS page.
type PageView struct {
	Title string
	// Body is CMS-authored HTML, cleaned before rendering.
	Body string
	// Extra is rendered after the body: the contact form or the gallery.
	Extra templ.Component
}

// Page renders the page heading, the cleaned body and the extra block.
func Page(p PageView) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<article><h1>`)
		h.text(p.Title)
		h.raw(`</h1>`)
		if body := sanitizer.SanitizeRichText(p.Body); body != "" {
			h.raw(`<div class="prose">`, body, `</div>`)
		}
		h.raw(`</article>`)
		h.render(p.Extra)
	})
}
