package views

import (
	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

// LayoutData is the page chrome around the main content.
type LayoutData struct {
	Locale          i18n.Locale
	Route           string
	Title           string
	SiteName        string
	MetaDescription string
	ShowBanner      bool
}

var navRoutes = []string{
	i18n.RouteHome,
	i18n.RouteAbout,
	i18n.RouteLocation,
	i18n.RouteGallery,
	i18n.RouteServices,
	i18n.RouteContact,
}

// Layout wraps content in the document shell: head with hreflang links,
// navigation, language switcher, the consent banner when no choice is
// stored, and the toast container used by error fragments.
func Layout(d LayoutData, content templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="`, string(d.Locale), `"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(d.Title)
		if d.SiteName != "" {
			h.raw(` | `)
			h.text(d.SiteName)
		}
		h.raw(`</title>`)
		if d.MetaDescription != "" {
			h.raw(`<meta name="description" content="`)
			h.text(d.MetaDescription)
			h.raw(`">`)
		}
		for _, alt := range i18n.Alternates(d.Route) {
			h.raw(`<link rel="alternate" hreflang="`, string(alt.Locale), `" href="`)
			h.url(alt.Path)
			h.raw(`">`)
		}
		h.raw(`<script type="module" src="/static/datastar.js"></script></head><body>`)

		h.raw(`<header><nav aria-label="main"><ul>`)
		for _, route := range navRoutes {
			h.raw(`<li><a href="`)
			h.url(i18n.LocalizedPath(string(d.Locale), route))
			h.raw(`"`)
			if route == d.Route {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(t(d.Locale, "nav_"+route))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav>`)
		h.render(LanguageSwitcher(d.Locale, d.Route))
		h.raw(`</header>`)

		h.raw(`<main id="content">`)
		h.render(content)
		h.raw(`</main><div id="toast-container" aria-live="assertive"></div>`)

		h.raw(`<footer><a href="`)
		h.url(i18n.LocalizedPath(string(d.Locale), i18n.RoutePrivacy))
		h.raw(`">`)
		h.text(t(d.Locale, "nav_privacy"))
		h.raw(`</a> <a href="`)
		h.url(i18n.LocalizedPath(string(d.Locale), i18n.RouteCookies))
		h.raw(`">`)
		h.text(t(d.Locale, "nav_cookies"))
		h.raw(`</a></footer>`)

		if d.ShowBanner {
			h.render(ConsentBanner(d.Locale))
		}
		h.raw(`</body></html>`)
	})
}

// LanguageSwitcher links the current route in every locale.
func LanguageSwitcher(current i18n.Locale, route string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<nav class="lang-switcher" aria-label="`)
		h.text(t(current, "lang_label"))
		h.raw(`"><ul>`)
		for _, alt := range i18n.Alternates(route) {
			h.raw(`<li><a hreflang="`, string(alt.Locale), `" href="`)
			h.url(alt.Path)
			h.raw(`"`)
			if alt.Locale == current {
				h.raw(` aria-current="true"`)
			}
			h.raw(`>`, string(alt.Locale), `</a></li>`)
		}
		h.raw(`</ul></nav>`)
	})
}
