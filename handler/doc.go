// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value bound by the
// configured binders, and returns a Response. Responses adapt to the
// client: templ components render as HTML for plain requests and as
// datastar element patches for datastar requests, so the same endpoint
// serves the progressive-enhancement form and its no-script fallback.
//
//	submit := func(ctx handler.Context, sub contact.Submission) handler.Response {
//		outcome, err := submitter.Submit(ctx, contact.Request{...})
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.Templ(views.ContactStatus(outcome), handler.WithTarget("#contact-status"))
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, contact.Submission](binder.Auto()),
//	))
//
// # Errors
//
// HTTPError carries a status and a translation key; ValidationError maps
// field names to messages. Binding failures become 400, 413 or 415.
// NewErrorHandler logs with the request ID and renders either an error page
// or an inline fragment. JSONError renders the same errors in the JSON
// envelope.
package handler
