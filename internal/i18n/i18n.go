// Package i18n maps the supported display languages to BCP-47 tags and
// resolves UI strings from a closed translation table.
package i18n

import (
	"golang.org/x/text/language"

	"herdcore/pkg/domain"
)

var tags = map[domain.Language]language.Tag{
	domain.LanguageEnglish:  language.English,
	domain.LanguageHindi:    language.Hindi,
	domain.LanguageAssamese: language.MustParse("as"),
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.MustParse("as"),
})

// Tag returns the BCP-47 tag for a display language.
func Tag(lang domain.Language) language.Tag {
	if tag, ok := tags[lang]; ok {
		return tag
	}
	return language.English
}

// Match resolves a user-supplied BCP-47 tag (for example "hi-IN") to the
// closest supported display language. Unparseable or unsupported tags resolve
// to English.
func Match(tag string) domain.Language {
	parsed, err := language.Parse(tag)
	if err != nil {
		return domain.LanguageEnglish
	}
	_, index, _ := matcher.Match(parsed)
	switch index {
	case 1:
		return domain.LanguageHindi
	case 2:
		return domain.LanguageAssamese
	default:
		return domain.LanguageEnglish
	}
}

// T looks up a UI string for the given language. Unknown keys fall back to
// the key itself, so a missing translation shows up on screen as the raw key
// rather than failing.
func T(lang domain.Language, key string) string {
	if table, ok := translations[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return key
}

// Translator binds T to one language.
func Translator(lang domain.Language) func(key string) string {
	return func(key string) string {
		return T(lang, key)
	}
}

// Keys lists the closed key set, in no particular order.
func Keys() []string {
	keys := make([]string, 0, len(translations[domain.LanguageEnglish]))
	for k := range translations[domain.LanguageEnglish] {
		keys = append(keys, k)
	}
	return keys
}
