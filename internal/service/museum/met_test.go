package museum_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"galeria/backend/internal/config"
	"galeria/backend/internal/model"
	"galeria/backend/internal/network"
	"galeria/backend/internal/service/museum"
)

func newMet(t *testing.T, handler http.HandlerFunc) *museum.MetSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.MetConfig{
		BaseURL:       srv.URL,
		BrowseQuery:   "painting",
		DetailTimeout: 500 * time.Millisecond,
	}
	return museum.NewMetSource(cfg, time.Second, network.NewClientFactory(nil))
}

func metObject(id int64) map[string]any {
	s := strconv.FormatInt(id, 10)
	return map[string]any{
		"objectID":          id,
		"title":             "Object " + s,
		"artistDisplayName": "Artist " + s,
		"objectDate":        "ca. 1650",
		"primaryImage":      "https://images.test/original/" + s + ".jpg",
		"primaryImageSmall": "https://images.test/web-large/" + s + ".jpg",
		"department":        "European Paintings",
		"medium":            "Oil on canvas",
		"dimensions":        "10 x 20 in.",
	}
}

// objectHandler serves every /objects/{id}; ids listed in missing answer 404
// and ids in noImage come back without a primary image.
func objectHandler(t *testing.T, searchIDs []int64, missing, noImage map[int64]bool, fetched *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			require.Equal(t, "true", r.URL.Query().Get("hasImages"))
			writeJSON(t, w, map[string]any{"total": len(searchIDs), "objectIDs": searchIDs})
			return
		}
		if fetched != nil {
			fetched.Add(1)
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/objects/"), 10, 64)
		require.NoError(t, err)
		if missing[id] {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not a valid object"}`))
			return
		}
		obj := metObject(id)
		if noImage[id] {
			obj["primaryImage"] = ""
			obj["primaryImageSmall"] = ""
		}
		writeJSON(t, w, obj)
	}
}

func seqIDs(from, n int64) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = from + int64(i)
	}
	return ids
}

func TestMetListArtworks_PagesThroughBrowseQueryWindow(t *testing.T) {
	var fetched atomic.Int32
	ids := seqIDs(1, 25)
	src := newMet(t, objectHandler(t, ids, map[int64]bool{7: true}, map[int64]bool{8: true}, &fetched))

	page := src.ListArtworks(context.Background(), 2, 3)

	// page 2 with size 3 reads the window ids[9:18] = 10..18 and keeps the first 3 usable
	require.Equal(t, 25, page.TotalCount)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Artworks, 3)
	require.Equal(t, []string{"10", "11", "12"}, []string{page.Artworks[0].ID, page.Artworks[1].ID, page.Artworks[2].ID})
	require.Equal(t, int32(9), fetched.Load())
	require.Equal(t, "https://images.test/web-large/10.jpg", page.Artworks[0].ImageURL)
	require.Equal(t, model.MuseumMet, page.Artworks[0].Museum)
}

func TestMetListArtworks_EveryAdvertisedPageHasRecords(t *testing.T) {
	src := newMet(t, objectHandler(t, seqIDs(1, 25), nil, nil, nil))
	ctx := context.Background()

	first := src.ListArtworks(ctx, 1, 3)
	require.Equal(t, 3, first.TotalPages)
	for p := 1; p <= first.TotalPages; p++ {
		require.NotEmpty(t, src.ListArtworks(ctx, p, 3).Artworks, "page %d", p)
	}
	require.Empty(t, src.ListArtworks(ctx, first.TotalPages+1, 3).Artworks)
}

func TestMetListArtworks_SkipsUnusableRecordsWithinWindow(t *testing.T) {
	ids := seqIDs(1, 6)
	src := newMet(t, objectHandler(t, ids, map[int64]bool{1: true}, map[int64]bool{2: true}, nil))

	page := src.ListArtworks(context.Background(), 1, 2)

	require.Equal(t, []string{"3", "4"}, []string{page.Artworks[0].ID, page.Artworks[1].ID})
	require.Equal(t, 1, page.TotalPages)
}

func TestMetListArtworks_PageBeyondResults(t *testing.T) {
	src := newMet(t, objectHandler(t, seqIDs(1, 4), nil, nil, nil))

	page := src.ListArtworks(context.Background(), 5, 2)

	require.Empty(t, page.Artworks)
	require.Equal(t, 4, page.TotalCount)
	require.Equal(t, 1, page.TotalPages)
}

func TestMetListArtworks_UpstreamDown(t *testing.T) {
	src := newMet(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	page := src.ListArtworks(context.Background(), 1, 10)

	require.True(t, page.Empty())
}

func TestMetSearchArtworks_OverfetchesAndTruncates(t *testing.T) {
	var fetched atomic.Int32
	ids := seqIDs(100, 50)
	src := newMet(t, objectHandler(t, ids, map[int64]bool{100: true, 101: true}, nil, &fetched))

	got := src.SearchArtworks(context.Background(), "rembrandt", 5)

	require.Len(t, got, 5)
	require.Equal(t, "102", got[0].ID)
	require.Equal(t, "106", got[4].ID)
	require.Equal(t, int32(15), fetched.Load())
}

func TestMetSearchArtworks_NullObjectIDs(t *testing.T) {
	src := newMet(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0,"objectIDs":null}`))
	})

	require.Empty(t, src.SearchArtworks(context.Background(), "zzzz", 10))
}

func TestMetGetArtworkByID(t *testing.T) {
	src := newMet(t, objectHandler(t, nil, map[int64]bool{2: true}, map[int64]bool{3: true}, nil))
	ctx := context.Background()

	got := src.GetArtworkByID(ctx, "1")
	require.NotNil(t, got)
	require.Equal(t, "https://images.test/original/1.jpg", got.ImageURL)
	require.Equal(t, "Artist 1", got.Artist)

	require.Nil(t, src.GetArtworkByID(ctx, "2"))
	require.Nil(t, src.GetArtworkByID(ctx, "3"))

	res := src.LookupArtwork(ctx, "2")
	require.True(t, museum.IsNotFound(res.Err()))
}

func TestMetLookupArtwork_EmptyFieldsGetPlaceholders(t *testing.T) {
	src := newMet(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objectID":9,"title":"","artistDisplayName":"","objectDate":"","primaryImage":"https://images.test/9.jpg"}`))
	})

	got, err := src.LookupArtwork(context.Background(), "9").Get()

	require.NoError(t, err)
	require.Equal(t, model.UntitledTitle, got.Title)
	require.Equal(t, model.UnknownArtist, got.Artist)
	require.Equal(t, model.UnknownDate, got.Date)
}

func TestMetLookupArtwork_MalformedPayload(t *testing.T) {
	src := newMet(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"no id"}`))
	})

	res := src.LookupArtwork(context.Background(), "9")

	require.ErrorIs(t, res.Err(), museum.ErrMalformed)
	require.False(t, museum.IsNotFound(res.Err()))
}
