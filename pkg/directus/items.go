package directus

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

const (
	// SiteSettingsCollection is the singleton holding site-wide settings.
	SiteSettingsCollection = "site_settings"

	translationFilterParam = "deep[translations][_filter][languages_code][_eq]"
	translatedFields       = "*,translations.*"
)

// TranslationQuery returns the parameters that join each item with its
// translation row for locale. Unknown locales fall back to i18n.Default.
func TranslationQuery(locale string) url.Values {
	return url.Values{
		translationFilterParam: {string(i18n.Normalize(locale))},
		"fields":               {translatedFields},
	}
}

// GetCollection lists the items of a collection, each joined with its
// translation for locale. extra parameters override the defaults.
func GetCollection[T any](ctx context.Context, c *Client, name, locale string, extra url.Values) ([]T, error) {
	query := TranslationQuery(locale)
	for key, values := range extra {
		query[key] = values
	}

	data, err := c.items(ctx, name, query)
	if err != nil {
		return nil, err
	}

	var items []T
	if len(data) == 0 || string(data) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	return items, nil
}

// GetItemBySlug returns the first item whose slug matches, translation
// joined. It returns nil and no error when nothing matches.
func GetItemBySlug[T any](ctx context.Context, c *Client, name, slug, locale string) (*T, error) {
	extra := url.Values{
		"filter[slug][_eq]": {slug},
		"limit":             {"1"},
	}
	items, err := GetCollection[T](ctx, c, name, locale, extra)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// GetSiteSettings returns the site settings singleton with its translation
// for locale. It returns nil and no error when the singleton is empty.
func GetSiteSettings[T any](ctx context.Context, c *Client, locale string) (*T, error) {
	data, err := c.items(ctx, SiteSettingsCollection, TranslationQuery(locale))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var settings T
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	return &settings, nil
}

// Translation is the common shape of a joined translation row.
type Translation struct {
	ID            int    `json:"id"`
	LanguagesCode string `json:"languages_code"`
}

// PickTranslation returns the row for locale, or the first row when none
// matches. ok is false for an empty slice.
func PickTranslation[T interface{ Code() string }](rows []T, locale string) (row T, ok bool) {
	if len(rows) == 0 {
		return row, false
	}
	want := string(i18n.Normalize(locale))
	for _, r := range rows {
		if r.Code() == want {
			return r, true
		}
	}
	return rows[0], true
}

// Code returns the language code of the row.
func (t Translation) Code() string {
	return t.LanguagesCode
}
