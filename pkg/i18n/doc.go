// Package i18n holds the site's locales, UI strings and localized route slugs.
//
// The site is published in a closed set of locales (it, en, de, fr) with
// Italian as the default. Every function accepting a locale normalizes it
// first: a value outside the set is silently replaced by Default, so lookups
// never fail on an unknown locale.
//
// # UI strings
//
// Strings live in YAML tables embedded in the binary (translations/*.yaml),
// one top-level key per locale:
//
//	it:
//	  nav_home: "Home"
//	  form_send: "Invia"
//
// T looks a key up in the embedded tables and returns the key itself when it
// is missing, so untranslated strings stay visible instead of rendering blank.
// A Translator can also be built over any TranslationAdapter, for example an
// FSAdapter over os.DirFS to override the tables on disk.
//
// # Routes
//
// Logical route names (home, about, contact, ...) map to a slug per locale.
// LocalizedPath builds "/{locale}/{slug}/", LocaleFromPath reads the locale
// back from a request path and RouteFromSlug resolves a slug to its route.
//
//	i18n.LocalizedPath("en", i18n.RouteAbout) // "/en/about-us/"
//	i18n.LocalizedPath("fr", i18n.RouteHome)  // "/fr/"
//	i18n.LocaleFromPath("/de/kontakt/")       // i18n.German
//
// # HTTP
//
// Middleware stores the request locale in the context (see GetLocale).
// Negotiate picks the best locale for an Accept-Language header using
// golang.org/x/text/language.
package i18n
