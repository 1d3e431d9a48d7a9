package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"galeria/backend/internal/logger"
	"galeria/backend/internal/model"
	"galeria/backend/internal/service/museum"
	"galeria/backend/internal/service/translation"
)

type ArtworkService interface {
	Browse(ctx context.Context, params BrowseParams) BrowseResult
	Search(ctx context.Context, params SearchParams) SearchResult
	GetByID(ctx context.Context, m model.Museum, id, lang string) (*model.Artwork, error)
}

// ArtworkServiceConfig holds per-source page sizes and search bounds.
type ArtworkServiceConfig struct {
	PrimaryPageSize          int
	SecondaryPageSize        int
	CompactPrimaryPageSize   int
	CompactSecondaryPageSize int
	SearchLimit              int
	SearchSlice              int
	DefaultLanguage          string
}

// DefaultArtworkServiceConfig returns the stock page sizes.
func DefaultArtworkServiceConfig() ArtworkServiceConfig {
	return ArtworkServiceConfig{
		PrimaryPageSize:          40,
		SecondaryPageSize:        30,
		CompactPrimaryPageSize:   20,
		CompactSecondaryPageSize: 10,
		SearchLimit:              30,
		SearchSlice:              20,
		DefaultLanguage:          "en",
	}
}

type artworkService struct {
	primary    museum.Source
	secondary  museum.Source
	sources    map[model.Museum]museum.Source
	translator TranslationService
	cfg        ArtworkServiceConfig
}

func NewArtworkService(primary, secondary museum.Source, translator TranslationService, cfg ArtworkServiceConfig) ArtworkService {
	defaults := DefaultArtworkServiceConfig()
	if cfg.PrimaryPageSize <= 0 {
		cfg.PrimaryPageSize = defaults.PrimaryPageSize
	}
	if cfg.SecondaryPageSize <= 0 {
		cfg.SecondaryPageSize = defaults.SecondaryPageSize
	}
	if cfg.CompactPrimaryPageSize <= 0 {
		cfg.CompactPrimaryPageSize = defaults.CompactPrimaryPageSize
	}
	if cfg.CompactSecondaryPageSize <= 0 {
		cfg.CompactSecondaryPageSize = defaults.CompactSecondaryPageSize
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaults.SearchLimit
	}
	if cfg.SearchSlice <= 0 {
		cfg.SearchSlice = defaults.SearchSlice
	}
	if translation.NormalizeLanguage(cfg.DefaultLanguage) == "" {
		cfg.DefaultLanguage = translator.SourceLanguage()
	}
	return &artworkService{
		primary:   primary,
		secondary: secondary,
		sources: map[model.Museum]museum.Source{
			primary.Museum():   primary,
			secondary.Museum(): secondary,
		},
		translator: translator,
		cfg:        cfg,
	}
}

func (s *artworkService) language(lang string) string {
	if l := translation.NormalizeLanguage(lang); l != "" {
		return l
	}
	return translation.NormalizeLanguage(s.cfg.DefaultLanguage)
}

func (s *artworkService) pageSizes(compact bool) (int, int) {
	if compact {
		return s.cfg.CompactPrimaryPageSize, s.cfg.CompactSecondaryPageSize
	}
	return s.cfg.PrimaryPageSize, s.cfg.SecondaryPageSize
}

func (s *artworkService) Browse(ctx context.Context, params BrowseParams) BrowseResult {
	start := time.Now()
	page := max(params.Page, 1)
	lang := s.language(params.Language)
	primarySize, secondarySize := s.pageSizes(params.Compact)

	// No derived context: one source failing must not cancel the other.
	var primaryPage, secondaryPage model.ArtworkPage
	var g errgroup.Group
	g.Go(func() error {
		primaryPage = s.primary.ListArtworks(ctx, page, primarySize)
		return nil
	})
	g.Go(func() error {
		secondaryPage = s.secondary.ListArtworks(ctx, page, secondarySize)
		return nil
	})
	_ = g.Wait()

	records := mergeRecords(
		FilterComplete(primaryPage.Artworks, ListingMode),
		FilterComplete(secondaryPage.Artworks, ListingMode),
	)
	categories := AvailableCategories(records)
	records = applyFilters(records, params.Museum, params.Category)
	records = s.translator.TranslateArtworks(ctx, records, lang)

	logger.Info("artworks browsed", "module", "service", "action", "browse", "resource", "artwork", "result", "ok",
		"page", page, "count", len(records), "lang", lang,
		"primary_count", len(primaryPage.Artworks), "secondary_count", len(secondaryPage.Artworks),
		"duration_ms", time.Since(start).Milliseconds())

	return BrowseResult{
		Artworks:   records,
		Categories: categories,
		Page:       page,
		TotalPages: max(primaryPage.TotalPages, secondaryPage.TotalPages),
		TotalCount: primaryPage.TotalCount + secondaryPage.TotalCount,
		Language:   lang,
	}
}

func (s *artworkService) Search(ctx context.Context, params SearchParams) SearchResult {
	query := strings.TrimSpace(params.Query)
	lang := s.language(params.Language)
	if query == "" {
		page := s.Browse(ctx, BrowseParams{Page: 1, Language: lang, Museum: params.Museum, Category: params.Category})
		return SearchResult{Artworks: page.Artworks, Categories: page.Categories, Language: lang}
	}

	start := time.Now()
	var primaryHits, secondaryHits []model.Artwork
	var g errgroup.Group
	g.Go(func() error {
		primaryHits = s.primary.SearchArtworks(ctx, query, s.cfg.SearchLimit)
		return nil
	})
	g.Go(func() error {
		secondaryHits = s.secondary.SearchArtworks(ctx, query, s.cfg.SearchLimit)
		return nil
	})
	_ = g.Wait()

	records := mergeRecords(
		truncate(FilterComplete(primaryHits, SearchMode), s.cfg.SearchSlice),
		truncate(FilterComplete(secondaryHits, SearchMode), s.cfg.SearchSlice),
	)
	records = RankByRelevance(records, query)
	categories := AvailableCategories(records)
	records = applyFilters(records, params.Museum, params.Category)
	records = s.translator.TranslateArtworks(ctx, records, lang)

	logger.Info("artworks searched", "module", "service", "action", "search", "resource", "artwork", "result", "ok",
		"query", query, "count", len(records), "lang", lang,
		"primary_count", len(primaryHits), "secondary_count", len(secondaryHits),
		"duration_ms", time.Since(start).Milliseconds())

	return SearchResult{
		Query:      query,
		Artworks:   records,
		Categories: categories,
		Language:   lang,
	}
}

func (s *artworkService) GetByID(ctx context.Context, m model.Museum, id, lang string) (*model.Artwork, error) {
	src, ok := s.sources[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown museum %q", ErrInvalid, m)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty artwork id", ErrInvalid)
	}

	artwork, err := src.LookupArtwork(ctx, id).Get()
	if err != nil {
		if museum.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s-%s", ErrNotFound, m, id)
		}
		logger.Warn("artwork lookup failed", "module", "service", "action", "get", "resource", "artwork", "result", "failed",
			"museum", m, "artwork_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	translated := s.translator.TranslateArtwork(ctx, artwork, s.language(lang))
	return &translated, nil
}
