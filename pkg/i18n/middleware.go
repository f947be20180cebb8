package i18n

import "net/http"

// LocaleExtractor returns the locale code a request asks for, or "" when it
// expresses no preference.
type LocaleExtractor func(r *http.Request) string

// FromPath reads the locale from the first path segment. Paths whose first
// segment is not a supported locale express no preference.
func FromPath() LocaleExtractor {
	return func(r *http.Request) string {
		if segment := firstSegment(r.URL.Path); IsSupported(segment) {
			return segment
		}
		return ""
	}
}

// FromCookie reads the locale from the named cookie.
func FromCookie(name string) LocaleExtractor {
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil || !IsSupported(c.Value) {
			return ""
		}
		return c.Value
	}
}

// FromQuery reads the locale from the named query parameter. Forms posted to
// locale-less API paths carry it in their action URL.
func FromQuery(param string) LocaleExtractor {
	return func(r *http.Request) string {
		if v := r.URL.Query().Get(param); IsSupported(v) {
			return v
		}
		return ""
	}
}

// FromAcceptLanguage negotiates the locale from the Accept-Language header.
func FromAcceptLanguage() LocaleExtractor {
	return func(r *http.Request) string {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		return string(Negotiate(header))
	}
}

// Middleware stores the request locale in the context. Extractors are tried
// in order and the first non-empty answer wins; with no answer the locale is
// Default. Without extractors the path prefix is used.
func Middleware(extractors ...LocaleExtractor) func(http.Handler) http.Handler {
	if len(extractors) == 0 {
		extractors = []LocaleExtractor{FromPath()}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := string(Default)
			for _, extract := range extractors {
				if l := extract(r); l != "" {
					locale = l
					break
				}
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), locale)))
		})
	}
}
