package museum

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"galeria/backend/internal/config"
	"galeria/backend/internal/model"
	"galeria/backend/internal/network"
)

// idOverfetch compensates for object ids whose detail has no usable image.
const idOverfetch = 3

// MetSource reads the Metropolitan Museum collection API. It has no listing
// endpoint, so browsing pages through the ids of a fixed search.
type MetSource struct {
	baseURL       string
	browseQuery   string
	timeout       time.Duration
	detailTimeout time.Duration
	fetch         fetcher
}

func NewMetSource(cfg config.MetConfig, timeout time.Duration, clients *network.ClientFactory) *MetSource {
	query := strings.TrimSpace(cfg.BrowseQuery)
	if query == "" {
		query = "painting"
	}
	return &MetSource{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		browseQuery:   query,
		timeout:       timeout,
		detailTimeout: cfg.DetailTimeout,
		fetch:         fetcher{museum: model.MuseumMet, clients: clients},
	}
}

func (s *MetSource) Museum() model.Museum {
	return model.MuseumMet
}

func (s *MetSource) ListArtworks(ctx context.Context, page, pageSize int) model.ArtworkPage {
	res := s.listPage(ctx, page, pageSize)
	if !res.OK() {
		logFailure(model.MuseumMet, "list", res.Err(), "page", page)
	}
	return res.ValueOr(model.ArtworkPage{})
}

func (s *MetSource) listPage(ctx context.Context, page, pageSize int) Result[model.ArtworkPage] {
	page, pageSize = normalizePaging(page, pageSize)

	body, err := s.search(ctx, s.browseQuery).Get()
	if err != nil {
		return Fail[model.ArtworkPage](err)
	}

	total := body.Total
	if total < len(body.ObjectIDs) {
		total = len(body.ObjectIDs)
	}
	// each page reads its own window of ids, so pages are counted in windows
	window := pageSize * idOverfetch
	result := model.ArtworkPage{
		TotalCount: total,
		TotalPages: (len(body.ObjectIDs) + window - 1) / window,
	}

	start := (page - 1) * window
	if start >= len(body.ObjectIDs) {
		return Ok(result)
	}
	end := min(start+window, len(body.ObjectIDs))

	artworks := fetchAll(ctx, model.MuseumMet, formatIDs(body.ObjectIDs[start:end]), func(ctx context.Context, id string) Result[model.Artwork] {
		return s.lookup(ctx, id, ImageStandard)
	})
	usable := make([]model.Artwork, 0, pageSize)
	for _, a := range artworks {
		if a.Title == model.UntitledTitle {
			continue
		}
		usable = append(usable, a)
		if len(usable) == pageSize {
			break
		}
	}
	result.Artworks = usable
	return Ok(result)
}

func (s *MetSource) SearchArtworks(ctx context.Context, query string, limit int) []model.Artwork {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	body, err := s.search(ctx, query).Get()
	if err != nil {
		logFailure(model.MuseumMet, "search", err, "query", query)
		return nil
	}

	ids := body.ObjectIDs
	if len(ids) > limit*idOverfetch {
		ids = ids[:limit*idOverfetch]
	}
	artworks := fetchAll(ctx, model.MuseumMet, formatIDs(ids), func(ctx context.Context, id string) Result[model.Artwork] {
		return s.lookup(ctx, id, ImageStandard)
	})
	if len(artworks) > limit {
		artworks = artworks[:limit]
	}
	return artworks
}

func (s *MetSource) search(ctx context.Context, query string) Result[metSearchResponse] {
	q := url.Values{}
	q.Set("q", query)
	q.Set("hasImages", "true")

	var body metSearchResponse
	if err := s.fetch.getJSON(ctx, s.baseURL+"/search?"+q.Encode(), s.timeout, &body); err != nil {
		return Fail[metSearchResponse](err)
	}
	return Ok(body)
}

func (s *MetSource) GetArtworkByID(ctx context.Context, id string) *model.Artwork {
	artwork, err := s.LookupArtwork(ctx, id).Get()
	if err != nil {
		logFailure(model.MuseumMet, "get", err, "artwork_id", id)
		return nil
	}
	return &artwork
}

func (s *MetSource) LookupArtwork(ctx context.Context, id string) Result[model.Artwork] {
	return s.lookup(ctx, id, ImageHigh)
}

// lookup fetches one object. Detail views use the full-size primary image,
// list views prefer the smaller rendition.
func (s *MetSource) lookup(ctx context.Context, id string, size ImageSize) Result[model.Artwork] {
	id = strings.TrimSpace(id)
	if n, err := strconv.ParseInt(id, 10, 64); err != nil || n <= 0 {
		return Fail[model.Artwork](fmt.Errorf("%w: invalid id %q", ErrNotFound, id))
	}

	var obj metObject
	if err := s.fetch.getJSON(ctx, s.baseURL+"/objects/"+id, s.detailTimeout, &obj); err != nil {
		return Fail[model.Artwork](err)
	}

	primary := cleanText(obj.PrimaryImage)
	if primary == "" {
		return Fail[model.Artwork](fmt.Errorf("met %s: %w", id, ErrNoImage))
	}
	image := primary
	if size < ImageHigh {
		image = orDefault(cleanText(obj.PrimaryImageSmall), primary)
	}

	return Ok(model.Artwork{
		ID:         strconv.FormatInt(obj.ObjectID, 10),
		Title:      orDefault(cleanText(obj.Title), model.UntitledTitle),
		Artist:     orDefault(cleanText(obj.ArtistDisplayName), model.UnknownArtist),
		Date:       orDefault(cleanText(obj.ObjectDate), model.UnknownDate),
		ImageURL:   image,
		Medium:     cleanText(obj.Medium),
		Department: cleanText(obj.Department),
		Dimensions: cleanText(obj.Dimensions),
		Museum:     model.MuseumMet,
	})
}

func formatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}
