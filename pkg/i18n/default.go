package i18n

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed translations/*.yaml
var embeddedTranslations embed.FS

var (
	defaultTranslator     *Translator
	defaultTranslatorOnce sync.Once
)

// Embedded returns the adapter over the UI string tables compiled into the binary.
func Embedded() TranslationAdapter {
	return NewFSAdapter(NewYAMLParser(), embeddedTranslations, "translations")
}

// DefaultTranslator returns the Translator over the embedded tables.
// The tables ship with the binary, so a load failure is a build defect and panics.
func DefaultTranslator() *Translator {
	defaultTranslatorOnce.Do(func() {
		t, err := NewTranslator(context.Background(), Embedded())
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded translations: %v", err))
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// T returns the UI string for key in locale from the embedded tables.
// Unknown locales use Default; missing keys return the key itself.
func T(locale, key string, args ...string) string {
	return DefaultTranslator().T(string(Normalize(locale)), key, args...)
}
