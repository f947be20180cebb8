package i18n

import "context"

// Parser turns the content of one translation file into per-locale tables.
type Parser interface {
	// Parse returns a map keyed by locale code whose values are the
	// translation tables of that locale.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension
	// The extension may or may not include a leading dot (e.g. both "yaml" and ".yaml" are valid)
	SupportsFileExtension(ext string) bool
}
