package service_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"galeria/backend/internal/model"
	"galeria/backend/internal/service"
)

func TestDetectCategories(t *testing.T) {
	a := model.Artwork{
		Title:      "Paris Street; Rainy Day",
		Medium:     "Oil on canvas",
		Department: "Painting and Sculpture of Europe",
	}
	want := []service.Category{service.CategoryPainting, service.CategorySculpture}
	if diff := cmp.Diff(want, service.DetectCategories(a)); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	require.Empty(t, service.DetectCategories(model.Artwork{Title: "Evening"}))
}

func TestMatchesCategory(t *testing.T) {
	photo := model.Artwork{Title: "Migrant Mother", Medium: "Gelatin silver print", Department: "Photography"}

	require.True(t, service.MatchesCategory(photo, service.CategoryPhotography))
	require.True(t, service.MatchesCategory(photo, service.CategoryAll))
	require.True(t, service.MatchesCategory(photo, ""))
	require.False(t, service.MatchesCategory(photo, service.CategoryGlass))
	require.False(t, service.MatchesCategory(photo, service.Category("bogus")))

	vase := model.Artwork{Title: "Amphora vase", Department: "Greek and Roman Art"}
	require.True(t, service.MatchesCategory(vase, service.CategoryCeramic))
	require.True(t, service.MatchesCategory(vase, service.CategoryAncient))
}

func TestAvailableCategories(t *testing.T) {
	records := []model.Artwork{
		{Medium: "Woodblock print", Department: "Asian Art"},
		{Medium: "Oil on canvas", Department: "Modern Art"},
		{Medium: "Ink and color on silk", Department: "Asian Art"},
	}

	got := service.AvailableCategories(records)
	want := []service.Category{
		service.CategoryAll,
		service.CategoryPainting,
		service.CategoryPrint,
		service.CategoryTextile,
		service.CategoryDecorative,
		service.CategoryAsian,
		service.CategoryModern,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []service.Category{service.CategoryAll}, service.AvailableCategories(nil))
}

func TestParseCategory(t *testing.T) {
	c, ok := service.ParseCategory(" Painting ")
	require.True(t, ok)
	require.Equal(t, service.CategoryPainting, c)

	c, ok = service.ParseCategory("")
	require.True(t, ok)
	require.Equal(t, service.CategoryAll, c)

	_, ok = service.ParseCategory("furniture")
	require.False(t, ok)
}

func TestCategories_AllFirst(t *testing.T) {
	cats := service.Categories()
	require.Len(t, cats, 14)
	require.Equal(t, service.CategoryAll, cats[0].ID)
	require.Equal(t, service.CategoryManuscript, cats[len(cats)-1].ID)
}
