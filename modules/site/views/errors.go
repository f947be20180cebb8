package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/handler"
)

// ErrorPage is the full-page error shown to regular requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(h *htmlWriter) {
		code := strconv.Itoa(p.StatusCode)
		h.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`, code, `</title></head><body>`)
		h.raw(`<main class="error"><h1>`, code, `</h1><p>`)
		h.text(p.Message)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="request-id"><code>`)
			h.text(p.RequestID)
			h.raw(`</code></p>`)
		}
		h.raw(`<p><a href="/">`, `&larr;</a></p></main></body></html>`)
	})
}

// ErrorToast is the inline fragment sent to datastar clients.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="toast toast--`, p.Type, `" role="alert">`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}
