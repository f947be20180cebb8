package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator looks up UI strings per locale.
// It uses an adapter to load translations from various sources.
type Translator struct {
	translations   map[string]map[string]any
	defaultLocale  Locale
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a Translator and loads its tables from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLocale: Default,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "locales", t.supportedLocales())
	return t, nil
}

// validateTranslations requires a table for the default locale, since every
// lookup for an unsupported locale ends there.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil table for language %s", ErrInvalidTranslations, lang)
		}
	}
	if _, ok := trans[string(t.defaultLocale)]; !ok {
		return fmt.Errorf("%w: missing default locale %s", ErrInvalidTranslations, t.defaultLocale)
	}
	return nil
}

// Reload reads the tables from the adapter again and swaps them in when they
// are valid. Lookups keep using the previous tables on error.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()
	return nil
}

func (t *Translator) supportedLocales() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Locales returns the locale codes that have a table loaded.
func (t *Translator) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLocales()
}

// table returns the table for locale, falling back to the default locale's.
func (t *Translator) table(locale string) map[string]any {
	if m, ok := t.translations[locale]; ok {
		return m
	}
	if t.missingLogMode {
		t.logger.Warn("locale not supported", "locale", locale)
	}
	return t.translations[string(t.defaultLocale)]
}

// lookup traverses a nested table using dot-separated keys.
func lookup(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		s, isString := v.(string)
		return s, isString
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, isString := next.(string)
			return s, isString
		}
		current, ok = next.(map[string]any)
		if !ok {
			return "", false
		}
	}
	return "", false
}

// HasTranslation reports whether locale has its own entry for key.
func (t *Translator) HasTranslation(locale, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.translations[locale]
	if !ok {
		return false
	}
	_, ok = lookup(m, key)
	return ok
}

// T returns the string for key in locale.
//
// An unsupported locale uses the default locale's table. A missing key
// returns the key itself, which keeps missing translations visible in the UI.
// Extra args are name/value pairs substituted into "%{name}" placeholders:
//
//	t.T("en", "form_rate_limited", "seconds", "30")
func (t *Translator) T(locale, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := lookup(t.table(locale), key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "locale", locale, "key", key)
		}
		return substitute(key, args)
	}
	return substitute(val, args)
}

// Td is T with an explicit fallback for missing keys.
func (t *Translator) Td(locale, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, ok := lookup(t.table(locale), key)
	if !ok {
		return substitute(defaultValue, args)
	}
	return substitute(val, args)
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(string(GetLocale(ctx)), key, args...)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders with values from the name/value
// pairs in args. Unknown placeholders are kept; an odd trailing arg is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
