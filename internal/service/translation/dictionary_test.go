package translation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"galeria/backend/internal/service/translation"
)

func defaultDictionary(t *testing.T) *translation.Dictionary {
	t.Helper()
	dict, err := translation.DefaultDictionary()
	require.NoError(t, err)
	return dict
}

func TestDefaultDictionary_Loads(t *testing.T) {
	dict := defaultDictionary(t)

	require.Greater(t, dict.Len("en", "pt"), 300)
	require.Greater(t, dict.Len("pt", "en"), 300)
	require.Zero(t, dict.Len("en", "fr"))
}

func TestDictionaryLookup_ExactMatch(t *testing.T) {
	dict := defaultDictionary(t)

	got, ok := dict.Lookup("oil on canvas", "en", "pt")
	require.True(t, ok)
	require.Equal(t, "óleo sobre tela", got)

	got, ok = dict.Lookup("  Oil on Canvas ", "en", "pt-BR")
	require.True(t, ok)
	require.Equal(t, "Óleo sobre tela", got)
}

func TestDictionaryLookup_WholeWordSubstitution(t *testing.T) {
	dict := defaultDictionary(t)

	got, ok := dict.Lookup("Marble and gold", "en", "pt")
	require.True(t, ok)
	require.Equal(t, "Mármore e ouro", got)

	got, ok = dict.Lookup("Portrait, oil on canvas", "en", "pt")
	require.True(t, ok)
	require.Equal(t, "Retrato, óleo sobre tela", got)
}

func TestDictionaryLookup_RespectsWordBoundaries(t *testing.T) {
	dict := defaultDictionary(t)

	_, ok := dict.Lookup("Inkwell", "en", "pt")
	require.False(t, ok)
}

func TestDictionaryLookup_ReverseDirection(t *testing.T) {
	dict := defaultDictionary(t)

	got, ok := dict.Lookup("óleo sobre tela", "pt", "en")
	require.True(t, ok)
	require.Equal(t, "oil on canvas", got)

	got, ok = dict.Lookup("Pintura", "pt", "en")
	require.True(t, ok)
	require.Equal(t, "Painting", got)
}

func TestDictionaryLookup_UnknownPairOrBlank(t *testing.T) {
	dict := defaultDictionary(t)

	_, ok := dict.Lookup("oil on canvas", "en", "de")
	require.False(t, ok)
	_, ok = dict.Lookup("   ", "en", "pt")
	require.False(t, ok)
}

func TestParseDictionary(t *testing.T) {
	data := []byte(`
source: en
target: es
terms:
  blue: azul
  navy blue: azul marino
  "$5 coin": "moneda de $5"
`)
	dict, err := translation.ParseDictionary(data)
	require.NoError(t, err)

	got, ok := dict.Lookup("navy blue coat", "en", "es")
	require.True(t, ok)
	require.Equal(t, "azul marino coat", got)

	got, ok = dict.Lookup("a $5 coin", "en", "es")
	require.True(t, ok)
	require.Equal(t, "a moneda de $5", got)

	got, ok = dict.Lookup("azul", "es", "en")
	require.True(t, ok)
	require.Equal(t, "blue", got)

	_, err = translation.ParseDictionary([]byte("source: en\ntarget: en\nterms: {}\n"))
	require.Error(t, err)

	_, err = translation.ParseDictionary([]byte("terms: ["))
	require.Error(t, err)
}

func TestNormalizeLanguage(t *testing.T) {
	require.Equal(t, "pt", translation.NormalizeLanguage("pt-BR"))
	require.Equal(t, "en", translation.NormalizeLanguage(" EN "))
	require.Equal(t, "", translation.NormalizeLanguage(""))
	require.Equal(t, "x!", translation.NormalizeLanguage("X!"))
}

func TestCacheKey(t *testing.T) {
	a := translation.CacheKey("en", "pt", "Water Lilies")
	require.Equal(t, a, translation.CacheKey("en", "pt", "Water Lilies"))
	require.NotEqual(t, a, translation.CacheKey("en", "es", "Water Lilies"))
	require.NotEqual(t, a, translation.CacheKey("en", "pt", "water lilies"))
	require.Contains(t, a, "en:pt:")
}
