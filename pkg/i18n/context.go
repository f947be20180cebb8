package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores locale in ctx after normalizing it.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, Normalize(locale))
}

// GetLocale returns the locale stored in ctx, or Default when none is set.
func GetLocale(ctx context.Context) Locale {
	if ctx == nil {
		return Default
	}
	locale, ok := ctx.Value(localeContextKey{}).(Locale)
	if !ok {
		return Default
	}
	return locale
}
