package site

import (
	"context"
	"log/slog"

	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// PagesCollection holds one item per logical route, keyed by slug.
const PagesCollection = "pages"

// PageTranslation is the translated text of a page.
type PageTranslation struct {
	directus.Translation
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description"`
}

// Page is one row of the pages collection. Slug is the logical route name,
// shared by every locale.
type Page struct {
	ID           int               `json:"id"`
	Slug         string            `json:"slug"`
	Translations []PageTranslation `json:"translations"`
}

// SiteSettingsTranslation is the translated part of the site settings.
type SiteSettingsTranslation struct {
	directus.Translation
	Tagline string `json:"tagline"`
}

// SiteSettings is the site_settings singleton.
type SiteSettings struct {
	SiteName     string                    `json:"site_name"`
	Translations []SiteSettingsTranslation `json:"translations"`
}

// pageContent is what a page renders, whatever its source.
type pageContent struct {
	Title           string
	Body            string
	MetaDescription string
	SiteName        string
}

// loadPage reads the page of route in locale. CMS failures and missing
// items fall back to the navigation label so the page still renders.
func (s *PageService) loadPage(ctx context.Context, locale i18n.Locale, route string) pageContent {
	content := pageContent{
		Title:    i18n.T(string(locale), "nav_"+route),
		SiteName: s.siteName,
	}

	page, err := directus.GetItemBySlug[Page](ctx, s.cms, PagesCollection, route, string(locale))
	if err != nil {
		s.logger.WarnContext(ctx, "page content unavailable",
			logger.Locale(string(locale)), slog.String("route", route), logger.Error(err))
	} else if page != nil {
		if tr, ok := directus.PickTranslation(page.Translations, string(locale)); ok {
			if tr.Title != "" {
				content.Title = tr.Title
			}
			content.Body = tr.Content
			content.MetaDescription = tr.MetaDescription
		}
	}

	settings, err := directus.GetSiteSettings[SiteSettings](ctx, s.cms, string(locale))
	if err != nil {
		s.logger.WarnContext(ctx, "site settings unavailable", logger.Locale(string(locale)), logger.Error(err))
	} else if settings != nil && settings.SiteName != "" {
		content.SiteName = settings.SiteName
	}
	return content
}

// loadGallery returns the gallery items, or none when the CMS fails.
func (s *PageService) loadGallery(ctx context.Context, locale i18n.Locale) []directus.GalleryItem {
	items, err := directus.Gallery(ctx, s.cms, string(locale))
	if err != nil {
		s.logger.WarnContext(ctx, "gallery unavailable", logger.Locale(string(locale)), logger.Error(err))
		return nil
	}
	return items
}
