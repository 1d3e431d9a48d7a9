package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"galeria/backend/internal/model"
)

// CompletenessMode selects how strict IsComplete is.
type CompletenessMode int

const (
	// ListingMode is used when browsing the catalog.
	ListingMode CompletenessMode = iota
	// SearchMode is stricter: shorter titles, medium and department required.
	SearchMode
)

const (
	maxListingTitleRunes = 150
	maxSearchTitleRunes  = 120
)

// Titles like "Studies, 1428–1501" are usually biographies, not works.
var dateRangeTitle = regexp.MustCompile(`\d{4}\s*[-–—]\s*\d{4}`)

var (
	untitledSentinels      = []string{strings.ToLower(model.UntitledTitle), "sem título", "sem titulo"}
	unknownArtistSentinels = []string{strings.ToLower(model.UnknownArtist), "desconhecido", "artist unknown"}
)

func (m CompletenessMode) maxTitleRunes() int {
	if m == SearchMode {
		return maxSearchTitleRunes
	}
	return maxListingTitleRunes
}

// IsComplete reports whether a record is fit for display.
func IsComplete(a model.Artwork, mode CompletenessMode) bool {
	image := strings.TrimSpace(a.ImageURL)
	if image == "" || strings.Contains(image, "null") || strings.Contains(image, "undefined") {
		return false
	}
	if !strings.HasPrefix(image, "/") && !strings.HasPrefix(image, "http") {
		return false
	}

	title := strings.TrimSpace(a.Title)
	if title == "" || isSentinel(title, untitledSentinels) {
		return false
	}
	if utf8.RuneCountInString(title) >= mode.maxTitleRunes() {
		return false
	}
	if dateRangeTitle.MatchString(title) {
		return false
	}

	artist := strings.TrimSpace(a.Artist)
	if artist == "" || isSentinel(artist, unknownArtistSentinels) {
		return false
	}

	if mode == SearchMode {
		if strings.TrimSpace(a.Medium) == "" || strings.TrimSpace(a.Department) == "" {
			return false
		}
	}
	return true
}

// FilterComplete returns the complete records in their original order.
func FilterComplete(records []model.Artwork, mode CompletenessMode) []model.Artwork {
	out := make([]model.Artwork, 0, len(records))
	for _, a := range records {
		if IsComplete(a, mode) {
			out = append(out, a)
		}
	}
	return out
}

func isSentinel(s string, sentinels []string) bool {
	lower := strings.ToLower(s)
	for _, sentinel := range sentinels {
		if lower == sentinel {
			return true
		}
	}
	return false
}
