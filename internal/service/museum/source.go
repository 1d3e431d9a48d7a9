// Package museum wraps the upstream museum collection APIs behind one Source contract.
package museum

import (
	"context"

	"galeria/backend/internal/model"
)

//go:generate mockgen -source=source.go -destination=../mock/mock_source.go -package=mock

// Source is one upstream museum collection. The listing and search methods
// never fail: any error is logged and collapsed into an empty value.
type Source interface {
	Museum() model.Museum
	// ListArtworks returns one page of the catalog with standard-size images.
	ListArtworks(ctx context.Context, page, pageSize int) model.ArtworkPage
	// SearchArtworks returns at most limit records matching query, in upstream order.
	SearchArtworks(ctx context.Context, query string, limit int) []model.Artwork
	// GetArtworkByID returns the detail record, or nil when it is missing, has no image or cannot be fetched.
	GetArtworkByID(ctx context.Context, id string) *model.Artwork
	// LookupArtwork is GetArtworkByID with the failure kept.
	LookupArtwork(ctx context.Context, id string) Result[model.Artwork]
}

var (
	_ Source = (*ArticSource)(nil)
	_ Source = (*MetSource)(nil)
)

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return page, pageSize
}
