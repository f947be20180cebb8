package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers while
// preventing memory exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// matcher lists Default first so it wins when nothing matches.
var matcher = language.NewMatcher([]language.Tag{
	language.Italian,
	language.English,
	language.German,
	language.French,
})

// matcherLocales is indexed like the tags passed to matcher.
var matcherLocales = []Locale{Italian, English, German, French}

// Negotiate picks the best supported locale for an Accept-Language header.
// Regional variants match their base language ("de-CH" → de) and an empty or
// unmatched header yields Default.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return matcherLocales[idx]
}
