package service

import "galeria/backend/internal/model"

// BrowseParams selects one catalog page. An empty Museum means every museum.
type BrowseParams struct {
	Page     int
	Compact  bool
	Language string
	Museum   model.Museum
	Category Category
}

// SearchParams is a free-text query with the same filters as BrowseParams.
type SearchParams struct {
	Query    string
	Language string
	Museum   model.Museum
	Category Category
}

// BrowseResult is one merged catalog page. Categories are computed before the
// museum and category filters so clients can still switch facets.
type BrowseResult struct {
	Artworks   []model.Artwork
	Categories []Category
	Page       int
	TotalPages int
	TotalCount int
	Language   string
}

// SearchResult is a ranked, merged result list.
type SearchResult struct {
	Query      string
	Artworks   []model.Artwork
	Categories []Category
	Language   string
}

func applyFilters(records []model.Artwork, museum model.Museum, category Category) []model.Artwork {
	if museum == "" && (category == "" || category == CategoryAll) {
		return records
	}
	out := make([]model.Artwork, 0, len(records))
	for _, a := range records {
		if museum != "" && a.Museum != museum {
			continue
		}
		if !MatchesCategory(a, category) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// mergeRecords concatenates the source lists in order, keeping the first record per key.
func mergeRecords(lists ...[]model.Artwork) []model.Artwork {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	seen := make(map[string]struct{}, n)
	out := make([]model.Artwork, 0, n)
	for _, l := range lists {
		for _, a := range l {
			if _, ok := seen[a.Key()]; ok {
				continue
			}
			seen[a.Key()] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

func truncate(records []model.Artwork, n int) []model.Artwork {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}
