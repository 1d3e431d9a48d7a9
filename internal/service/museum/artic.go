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

// ArticSource reads the Art Institute of Chicago public API. Listing is paginated
// upstream; search returns ids that are then resolved one by one.
type ArticSource struct {
	baseURL       string
	iiifURL       string
	timeout       time.Duration
	detailTimeout time.Duration
	fetch         fetcher
}

func NewArticSource(cfg config.ArticConfig, timeout time.Duration, clients *network.ClientFactory) *ArticSource {
	return &ArticSource{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		iiifURL:       strings.TrimRight(cfg.IIIFBaseURL, "/"),
		timeout:       timeout,
		detailTimeout: cfg.DetailTimeout,
		fetch:         fetcher{museum: model.MuseumArtic, clients: clients},
	}
}

func (s *ArticSource) Museum() model.Museum {
	return model.MuseumArtic
}

func (s *ArticSource) ListArtworks(ctx context.Context, page, pageSize int) model.ArtworkPage {
	res := s.listPage(ctx, page, pageSize)
	if !res.OK() {
		logFailure(model.MuseumArtic, "list", res.Err(), "page", page)
	}
	return res.ValueOr(model.ArtworkPage{})
}

func (s *ArticSource) listPage(ctx context.Context, page, pageSize int) Result[model.ArtworkPage] {
	page, pageSize = normalizePaging(page, pageSize)
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("fields", articListFields)

	var body articListResponse
	if err := s.fetch.getJSON(ctx, s.baseURL+"/artworks?"+q.Encode(), s.timeout, &body); err != nil {
		return Fail[model.ArtworkPage](err)
	}

	artworks := make([]model.Artwork, 0, len(body.Data))
	for _, w := range body.Data {
		if strings.TrimSpace(w.ImageID) == "" || strings.TrimSpace(w.Title) == "" {
			continue
		}
		artworks = append(artworks, s.normalize(w, ImageStandard, false))
	}
	return Ok(model.ArtworkPage{
		Artworks:   artworks,
		TotalCount: body.Pagination.Total,
		TotalPages: body.Pagination.TotalPages,
	})
}

func (s *ArticSource) SearchArtworks(ctx context.Context, query string, limit int) []model.Artwork {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	ids, err := s.searchIDs(ctx, query, limit).Get()
	if err != nil {
		logFailure(model.MuseumArtic, "search", err, "query", query)
		return nil
	}
	return fetchAll(ctx, model.MuseumArtic, ids, func(ctx context.Context, id string) Result[model.Artwork] {
		return s.lookup(ctx, id, ImageStandard, false)
	})
}

func (s *ArticSource) searchIDs(ctx context.Context, query string, limit int) Result[[]string] {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", "id")

	var body articSearchResponse
	if err := s.fetch.getJSON(ctx, s.baseURL+"/artworks/search?"+q.Encode(), s.timeout, &body); err != nil {
		return Fail[[]string](err)
	}

	ids := make([]string, 0, len(body.Data))
	for _, hit := range body.Data {
		if len(ids) == limit {
			break
		}
		ids = append(ids, strconv.FormatInt(hit.ID, 10))
	}
	return Ok(ids)
}

func (s *ArticSource) GetArtworkByID(ctx context.Context, id string) *model.Artwork {
	artwork, err := s.LookupArtwork(ctx, id).Get()
	if err != nil {
		logFailure(model.MuseumArtic, "get", err, "artwork_id", id)
		return nil
	}
	return &artwork
}

func (s *ArticSource) LookupArtwork(ctx context.Context, id string) Result[model.Artwork] {
	return s.lookup(ctx, id, ImageHigh, true)
}

func (s *ArticSource) lookup(ctx context.Context, id string, size ImageSize, detail bool) Result[model.Artwork] {
	id = strings.TrimSpace(id)
	if n, err := strconv.ParseInt(id, 10, 64); err != nil || n <= 0 {
		return Fail[model.Artwork](fmt.Errorf("%w: invalid id %q", ErrNotFound, id))
	}

	fields := articListFields
	if detail {
		fields = articDetailFields
	}
	endpoint := fmt.Sprintf("%s/artworks/%s?fields=%s", s.baseURL, id, url.QueryEscape(fields))

	var body articDetailResponse
	if err := s.fetch.getJSON(ctx, endpoint, s.detailTimeout, &body); err != nil {
		return Fail[model.Artwork](err)
	}
	if strings.TrimSpace(body.Data.ImageID) == "" {
		return Fail[model.Artwork](fmt.Errorf("artic %s: %w", id, ErrNoImage))
	}
	return Ok(s.normalize(*body.Data, size, detail))
}

func (s *ArticSource) normalize(w articArtwork, size ImageSize, detail bool) model.Artwork {
	a := model.Artwork{
		ID:         strconv.FormatInt(w.ID, 10),
		Title:      orDefault(cleanText(w.Title), model.UntitledTitle),
		Artist:     orDefault(cleanText(w.ArtistDisplay), model.UnknownArtist),
		Date:       orDefault(cleanText(w.DateDisplay), model.UnknownDate),
		ImageURL:   IIIFImageURL(s.iiifURL, w.ImageID, size),
		Medium:     cleanText(w.MediumDisplay),
		Department: cleanText(w.DepartmentTitle),
		Dimensions: cleanText(w.Dimensions),
		Museum:     model.MuseumArtic,
	}
	if detail {
		a.Description = stripHTML(w.Description)
	}
	return a
}
