package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herdcore/pkg/domain"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "Dashboard", T(domain.LanguageEnglish, "common.dashboard"))
	assert.Equal(t, "डैशबोर्ड", T(domain.LanguageHindi, "common.dashboard"))
	assert.Equal(t, "ডেশ্বব'ৰ্ড", T(domain.LanguageAssamese, "common.dashboard"))
}

func TestLookupFallsBackToKey(t *testing.T) {
	assert.Equal(t, "common.nonexistent", T(domain.LanguageEnglish, "common.nonexistent"))
	assert.Equal(t, "common.dashboard", T(domain.Language("klingon"), "common.dashboard"))
}

func TestTablesCarryTheFullKeySet(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)
	for _, lang := range domain.Languages() {
		table := translations[lang]
		require.Len(t, table, len(keys), "language %s", lang)
		for _, key := range keys {
			assert.Contains(t, table, key, "language %s", lang)
			assert.NotEmpty(t, table[key], "language %s key %s", lang, key)
		}
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		tag  string
		want domain.Language
	}{
		{tag: "en", want: domain.LanguageEnglish},
		{tag: "en-US", want: domain.LanguageEnglish},
		{tag: "hi", want: domain.LanguageHindi},
		{tag: "hi-IN", want: domain.LanguageHindi},
		{tag: "as", want: domain.LanguageAssamese},
		{tag: "fr", want: domain.LanguageEnglish},
		{tag: "not a tag", want: domain.LanguageEnglish},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.tag))
		})
	}
}

func TestTranslatorBindsLanguage(t *testing.T) {
	tr := Translator(domain.LanguageHindi)
	assert.Equal(t, "पशु", tr("common.animals"))
}
