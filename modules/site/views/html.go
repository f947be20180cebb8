package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/sanitizer"
)

// htmlWriter accumulates the first write error so components read linearly.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes untrusted text, entity-encoded.
func (h *htmlWriter) text(s string) {
	h.raw(sanitizer.EncodeHTML(s))
}

// url writes an attribute URL, dropping unsafe schemes.
func (h *htmlWriter) url(s string) {
	h.text(sanitizer.SanitizeURL(s))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

func t(locale i18n.Locale, key string, args ...string) string {
	return i18n.T(string(locale), key, args...)
}
