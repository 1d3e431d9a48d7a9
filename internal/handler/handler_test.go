package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"galeria/backend/internal/handler"
	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
	"galeria/backend/internal/service/translation"
)

type fakeArtworkService struct {
	browse     service.BrowseParams
	search     service.SearchParams
	artwork    *model.Artwork
	err        error
	gotMuseum  model.Museum
	gotID      string
	gotLang    string
	browseResp service.BrowseResult
	searchResp service.SearchResult
}

func (f *fakeArtworkService) Browse(_ context.Context, params service.BrowseParams) service.BrowseResult {
	f.browse = params
	return f.browseResp
}

func (f *fakeArtworkService) Search(_ context.Context, params service.SearchParams) service.SearchResult {
	f.search = params
	return f.searchResp
}

func (f *fakeArtworkService) GetByID(_ context.Context, m model.Museum, id, lang string) (*model.Artwork, error) {
	f.gotMuseum, f.gotID, f.gotLang = m, id, lang
	return f.artwork, f.err
}

type fakeTranslationService struct{}

func (fakeTranslationService) TranslateText(_ context.Context, text, sourceLang, targetLang string) string {
	if sourceLang == targetLang {
		return text
	}
	return targetLang + ":" + text
}

func (fakeTranslationService) TranslateArtwork(_ context.Context, a model.Artwork, _ string) model.Artwork {
	return a
}

func (fakeTranslationService) TranslateArtworks(_ context.Context, records []model.Artwork, _ string) []model.Artwork {
	return records
}

func (fakeTranslationService) SourceLanguage() string { return "en" }

type fakeStats struct{}

func (fakeStats) Provider() string { return "google-web" }
func (fakeStats) CacheLen() int    { return 12 }
func (fakeStats) Stats() translation.Stats {
	return translation.Stats{Remote: 3, Dictionary: 2, Fallback: 1, CacheHits: 9}
}

func newTestServer(artworks service.ArtworkService) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	handler.NewArtworkHandler(artworks).RegisterRoutes(api)
	handler.NewTranslateHandler(fakeTranslationService{}).RegisterRoutes(api)
	handler.NewSystemHandler(fakeTranslationService{}, fakeStats{}).RegisterRoutes(api)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestArtworkHandler_Browse(t *testing.T) {
	svc := &fakeArtworkService{browseResp: service.BrowseResult{
		Artworks: []model.Artwork{{
			ID: "27992", Title: "A Sunday on La Grande Jatte", Artist: "Georges Seurat", Date: "1884",
			ImageURL: "https://www.artic.edu/iiif/2/abc/full/843,/0/default.jpg", Museum: model.MuseumArtic,
		}},
		Categories: []service.Category{service.CategoryAll, service.CategoryPainting},
		Page:       2,
		TotalPages: 10,
		TotalCount: 400,
		Language:   "pt",
	}}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/artworks?page=2&compact=true&lang=pt&museum=ARTIC&type=painting", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, service.BrowseParams{
		Page: 2, Compact: true, Language: "pt", Museum: model.MuseumArtic, Category: service.CategoryPainting,
	}, svc.browse)

	body := decode[map[string]any](t, rec)
	require.EqualValues(t, 10, body["totalPages"])
	require.Equal(t, "pt", body["lang"])
	require.Equal(t, []any{"all", "painting"}, body["categories"])
	artworks := body["artworks"].([]any)
	require.Len(t, artworks, 1)
	first := artworks[0].(map[string]any)
	require.Equal(t, "artic-27992", first["key"])
	require.Equal(t, "Art Institute of Chicago", first["museumName"])
	require.NotContains(t, first, "description")
}

func TestArtworkHandler_BrowseDefaults(t *testing.T) {
	svc := &fakeArtworkService{}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/artworks?page=abc&museum=all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, svc.browse.Page)
	require.False(t, svc.browse.Compact)
	require.Empty(t, svc.browse.Museum)
	require.Equal(t, service.CategoryAll, svc.browse.Category)
	require.JSONEq(t, `{"artworks":[],"categories":[],"page":0,"totalPages":0,"totalCount":0,"lang":""}`, rec.Body.String())
}

func TestArtworkHandler_RejectsUnknownFilters(t *testing.T) {
	e := newTestServer(&fakeArtworkService{})

	rec := doRequest(e, http.MethodGet, "/api/artworks?museum=louvre", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/artworks/search?q=horse&type=furniture", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArtworkHandler_Search(t *testing.T) {
	svc := &fakeArtworkService{searchResp: service.SearchResult{Query: "horse", Language: "en"}}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/artworks/search?q=horse&museum=met", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "horse", svc.search.Query)
	require.Equal(t, model.MuseumMet, svc.search.Museum)
	body := decode[map[string]any](t, rec)
	require.Equal(t, "horse", body["query"])
}

func TestArtworkHandler_Get(t *testing.T) {
	svc := &fakeArtworkService{artwork: &model.Artwork{
		ID: "436535", Title: "Wheat Field with Cypresses", Artist: "Vincent van Gogh",
		Description: "Painted at Saint-Rémy.", Museum: model.MuseumMet,
	}}
	e := newTestServer(svc)

	rec := doRequest(e, http.MethodGet, "/api/artworks/MET/436535?lang=pt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, model.MuseumMet, svc.gotMuseum)
	require.Equal(t, "436535", svc.gotID)
	require.Equal(t, "pt", svc.gotLang)

	body := decode[map[string]any](t, rec)
	require.Equal(t, "Painted at Saint-Rémy.", body["description"])
	require.Equal(t, "met", body["museum"])
}

func TestArtworkHandler_GetErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: met-1", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: timeout", service.ErrUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: unknown museum", service.ErrInvalid), http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		e := newTestServer(&fakeArtworkService{err: tc.err})
		rec := doRequest(e, http.MethodGet, "/api/artworks/met/1", "")
		require.Equal(t, tc.status, rec.Code, tc.err.Error())
		require.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestTranslateHandler(t *testing.T) {
	e := newTestServer(&fakeArtworkService{})

	rec := doRequest(e, http.MethodPost, "/api/translate", `{"text":"Oil on canvas","sourceLang":"en","targetLang":"pt"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"translatedText":"pt:Oil on canvas"}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/translate", `{"text":"Oil on canvas","sourceLang":"en","targetLang":"en"}`)
	require.JSONEq(t, `{"translatedText":"Oil on canvas"}`, rec.Body.String())
}

func TestTranslateHandler_MissingParams(t *testing.T) {
	e := newTestServer(&fakeArtworkService{})

	for _, body := range []string{
		`{"sourceLang":"en","targetLang":"pt"}`,
		`{"text":"Bronze","targetLang":"pt"}`,
		`{"text":"Bronze","sourceLang":"en"}`,
		`not json`,
	} {
		rec := doRequest(e, http.MethodPost, "/api/translate", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Contains(t, rec.Body.String(), `"error":`, body)
	}
}

func TestSystemHandler_Categories(t *testing.T) {
	e := newTestServer(&fakeArtworkService{})

	rec := doRequest(e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[[]map[string]string](t, rec)
	require.Len(t, cats, 14)
	require.Equal(t, map[string]string{"id": "all", "label": "All"}, cats[0])

	rec = doRequest(e, http.MethodGet, "/api/categories?lang=pt", "")
	cats = decode[[]map[string]string](t, rec)
	require.Equal(t, "pt:Painting", cats[1]["label"])
}

func TestSystemHandler_Health(t *testing.T) {
	e := newTestServer(&fakeArtworkService{})

	rec := doRequest(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "google-web", body["translator"])
	require.EqualValues(t, 12, body["cacheSize"])
	require.EqualValues(t, 9, body["resolutions"].(map[string]any)["cacheHits"])
}
