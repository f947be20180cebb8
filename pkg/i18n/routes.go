package i18n

import "strings"

// Logical route names shared by every locale.
const (
	RouteHome     = "home"
	RouteAbout    = "about"
	RouteLocation = "location"
	RouteGallery  = "gallery"
	RouteServices = "services"
	RouteContact  = "contact"
	RoutePrivacy  = "privacy"
	RouteCookies  = "cookies"
)

// Routes lists the logical route names in navigation order.
var Routes = []string{
	RouteHome,
	RouteAbout,
	RouteLocation,
	RouteGallery,
	RouteServices,
	RouteContact,
	RoutePrivacy,
	RouteCookies,
}

// routeSlugs maps each locale's logical routes onto their URL slug.
// The home route has an empty slug everywhere.
var routeSlugs = map[Locale]map[string]string{
	Italian: {
		RouteHome:     "",
		RouteAbout:    "chi-siamo",
		RouteLocation: "dove-siamo",
		RouteGallery:  "gallery",
		RouteServices: "servizi",
		RouteContact:  "contatti",
		RoutePrivacy:  "privacy-policy",
		RouteCookies:  "cookie-policy",
	},
	English: {
		RouteHome:     "",
		RouteAbout:    "about-us",
		RouteLocation: "where-we-are",
		RouteGallery:  "gallery",
		RouteServices: "services",
		RouteContact:  "contact",
		RoutePrivacy:  "privacy-policy",
		RouteCookies:  "cookie-policy",
	},
	German: {
		RouteHome:     "",
		RouteAbout:    "ueber-uns",
		RouteLocation: "wo-wir-sind",
		RouteGallery:  "galerie",
		RouteServices: "dienstleistungen",
		RouteContact:  "kontakt",
		RoutePrivacy:  "datenschutz",
		RouteCookies:  "cookie-richtlinie",
	},
	French: {
		RouteHome:     "",
		RouteAbout:    "qui-sommes-nous",
		RouteLocation: "ou-sommes-nous",
		RouteGallery:  "galerie",
		RouteServices: "services",
		RouteContact:  "contact",
		RoutePrivacy:  "politique-confidentialite",
		RouteCookies:  "politique-cookies",
	},
}

// Slug returns the URL slug of route in locale. An unknown route name is
// returned unchanged so it can serve as a literal slug.
func Slug(locale, route string) string {
	slugs := routeSlugs[Normalize(locale)]
	if slug, ok := slugs[route]; ok {
		return slug
	}
	return route
}

// LocalizedPath builds the path of route in locale: "/{locale}/" for the home
// route and "/{locale}/{slug}/" otherwise.
func LocalizedPath(locale, route string) string {
	l := Normalize(locale)
	slug := Slug(string(l), route)
	if slug == "" {
		return "/" + string(l) + "/"
	}
	return "/" + string(l) + "/" + slug + "/"
}

// LocaleFromPath returns the locale named by the first non-empty path segment,
// or Default when that segment is not a supported locale.
func LocaleFromPath(path string) Locale {
	return Normalize(firstSegment(path))
}

func firstSegment(path string) string {
	for segment := range strings.SplitSeq(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}

// RouteFromSlug resolves a locale-specific slug back to its logical route.
// The empty slug resolves to RouteHome.
func RouteFromSlug(locale, slug string) (string, bool) {
	slug = strings.Trim(slug, "/")
	for route, s := range routeSlugs[Normalize(locale)] {
		if s == slug {
			return route, true
		}
	}
	return "", false
}

// Alternate is the path of one route in one locale.
type Alternate struct {
	Locale Locale
	Path   string
}

// Alternates returns the path of route in every supported locale, in
// switcher order. It feeds language switchers and hreflang links.
func Alternates(route string) []Alternate {
	out := make([]Alternate, 0, len(supported))
	for _, l := range supported {
		out = append(out, Alternate{Locale: l, Path: LocalizedPath(string(l), route)})
	}
	return out
}
