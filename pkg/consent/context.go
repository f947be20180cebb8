package consent

import (
	"context"
	"net/http"

	"github.com/Marco22874/lares-frontend/pkg/cookie"
)

type contextKey struct{}

// WithChoice stores c in ctx.
func WithChoice(ctx context.Context, c Choice) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the choice stored by Middleware, or ChoiceNone.
func FromContext(ctx context.Context) Choice {
	c, _ := ctx.Value(contextKey{}).(Choice)
	return c
}

// Middleware reads the consent cookie once per request and stores the choice
// in the request context, so templates can decide whether to render the banner.
func Middleware(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := NewStore(NewCookieStorage(cookies, w, r))
			next.ServeHTTP(w, r.WithContext(WithChoice(r.Context(), store.Get())))
		})
	}
}
