package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
)

func TestParseCLIFilters(t *testing.T) {
	cliMuseum, cliCategory = "MET", "sculpture"
	t.Cleanup(func() { cliMuseum, cliCategory = "all", "all" })

	f, err := parseCLIFilters()
	require.NoError(t, err)
	require.Equal(t, model.MuseumMet, f.museum)
	require.Equal(t, service.CategorySculpture, f.category)

	cliMuseum = "all"
	f, err = parseCLIFilters()
	require.NoError(t, err)
	require.Empty(t, f.museum)

	cliMuseum = "louvre"
	_, err = parseCLIFilters()
	require.ErrorIs(t, err, service.ErrInvalid)

	cliMuseum, cliCategory = "all", "furniture"
	_, err = parseCLIFilters()
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]string{"translatedText": "óleo sobre tela & <b>"}))
	require.Equal(t, "{\n  \"translatedText\": \"óleo sobre tela & <b>\"\n}\n", buf.String())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "search", "browse", "translate"} {
		require.True(t, names[want], want)
	}
}
