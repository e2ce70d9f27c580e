package server

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/slugify/pkg/slug"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Index 0 is the no-match default.
var (
	localeTags = []language.Tag{
		language.English,
		language.MustParse("de-DE"),
		language.MustParse("de-CH"),
		language.MustParse("da-DK"),
		language.MustParse("ca"),
		language.MustParse("sr-RS"),
		language.MustParse("bs-BA"),
	}
	localeByIndex = []slug.Locale{
		slug.LocaleNone,
		slug.LocaleGerman,
		slug.LocaleSwissGerman,
		slug.LocaleDanish,
		slug.LocaleCatalan,
		slug.LocaleSerbian,
		slug.LocaleBosnian,
	}
	localeMatcher = language.NewMatcher(localeTags)
)

// localeFromAcceptLanguage picks the transliteration locale that best matches
// an Accept-Language header. Languages without dedicated rules give
// slug.LocaleNone.
func localeFromAcceptLanguage(header string) slug.Locale {
	if header == "" {
		return slug.LocaleNone
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return slug.LocaleNone
	}

	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No || idx <= 0 || idx >= len(localeByIndex) {
		return slug.LocaleNone
	}
	return localeByIndex[idx]
}
