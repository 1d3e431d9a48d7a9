package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
)

var (
	cliLang     string
	cliMuseum   string
	cliCategory string
	cliPage     int
	cliCompact  bool
	cliFrom     string
	cliTo       string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search both museums and print the ranked results as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		filters, err := parseCLIFilters()
		if err != nil {
			return err
		}
		result := a.artworks.Search(cmd.Context(), service.SearchParams{
			Query:    strings.Join(args, " "),
			Language: cliLang,
			Museum:   filters.museum,
			Category: filters.category,
		})
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Print one merged catalog page as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		filters, err := parseCLIFilters()
		if err != nil {
			return err
		}
		result := a.artworks.Browse(cmd.Context(), service.BrowseParams{
			Page:     cliPage,
			Compact:  cliCompact,
			Language: cliLang,
			Museum:   filters.museum,
			Category: filters.category,
		})
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate text through the remote provider and dictionary chain",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		from := cliFrom
		if from == "" {
			from = a.translations.SourceLanguage()
		}
		text := strings.Join(args, " ")
		translated := a.translations.TranslateText(cmd.Context(), text, from, cliTo)
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"text":           text,
			"sourceLang":     from,
			"targetLang":     cliTo,
			"translatedText": translated,
			"resolutions":    a.engine.Stats(),
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{searchCmd, browseCmd} {
		cmd.Flags().StringVar(&cliLang, "lang", "", "Target language (e.g. pt)")
		cmd.Flags().StringVar(&cliMuseum, "museum", "all", "Museum filter: all, artic or met")
		cmd.Flags().StringVar(&cliCategory, "type", "all", "Category filter")
	}
	browseCmd.Flags().IntVar(&cliPage, "page", 1, "Page number")
	browseCmd.Flags().BoolVar(&cliCompact, "compact", false, "Use the smaller mobile page sizes")

	translateCmd.Flags().StringVar(&cliFrom, "from", "", "Source language (default: the records' source language)")
	translateCmd.Flags().StringVar(&cliTo, "to", "pt", "Target language")
}

type cliFilters struct {
	museum   model.Museum
	category service.Category
}

func parseCLIFilters() (cliFilters, error) {
	var f cliFilters
	if m := strings.ToLower(strings.TrimSpace(cliMuseum)); m != "" && m != "all" {
		f.museum = model.Museum(m)
		if !f.museum.Valid() {
			return f, fmt.Errorf("%w: museum %q", service.ErrInvalid, cliMuseum)
		}
	}
	c, ok := service.ParseCategory(cliCategory)
	if !ok {
		return f, fmt.Errorf("%w: category %q", service.ErrInvalid, cliCategory)
	}
	f.category = c
	return f, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
