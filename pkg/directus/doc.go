// Package directus is a small read-mostly client for the Directus CMS that
// holds the site's translated content.
//
// Every read joins items with the translation row for one locale, using the
// deep filter
//
//	deep[translations][_filter][languages_code][_eq]=<locale>
//	fields=*,translations.*
//
// Locales are normalized first, so an unknown locale silently reads Italian.
//
//	c, err := directus.NewClient(cfg.DirectusURL,
//		directus.WithToken(cfg.DirectusToken),
//		directus.WithCache(256, 5*time.Minute),
//	)
//	pages, err := directus.GetCollection[Page](ctx, c, "pages", "en", nil)
//	page, err := directus.GetItemBySlug[Page](ctx, c, "pages", "chi-siamo", "it")
//	img := c.AssetURL(page.Cover, url.Values{"width": {"800"}})
//
// Any non-2xx response is returned as *APIError carrying the status and the
// endpoint. Error bodies that are not JSON leave the message empty; a failed
// contact submission falls back to a generic message.
package directus
