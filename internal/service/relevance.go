package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"galeria/backend/internal/model"
)

// Relevance weights. Rules are independent and their scores add up.
const (
	weightTitleExact      = 100
	weightTitlePrefix     = 50
	weightTitleWord       = 30
	weightTitleContains   = 20
	weightArtistExact     = 40
	weightArtistPrefix    = 25
	weightArtistContains  = 15
	weightMediumContains  = 10
	weightDeptContains    = 8
	weightDateContains    = 5
	weightTitleQueryWord  = 3
	weightArtistQueryWord = 2
	minQueryWordRunes     = 3
)

type scorer struct {
	query string
	words []string
	word  *regexp.Regexp
}

func newScorer(query string) *scorer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return &scorer{}
	}
	s := &scorer{
		query: q,
		word:  regexp.MustCompile(`(^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(q) + `([^\p{L}\p{N}_]|$)`),
	}
	for _, w := range strings.Fields(q) {
		if utf8.RuneCountInString(w) >= minQueryWordRunes {
			s.words = append(s.words, w)
		}
	}
	return s
}

func (s *scorer) score(a model.Artwork) int {
	if s.query == "" {
		return 0
	}
	q := s.query
	title := strings.ToLower(strings.TrimSpace(a.Title))
	artist := strings.ToLower(strings.TrimSpace(a.Artist))

	score := 0
	if title == q {
		score += weightTitleExact
	}
	if strings.HasPrefix(title, q) {
		score += weightTitlePrefix
	}
	if s.word.MatchString(title) {
		score += weightTitleWord
	}
	if strings.Contains(title, q) {
		score += weightTitleContains
	}
	if artist == q {
		score += weightArtistExact
	}
	if strings.HasPrefix(artist, q) {
		score += weightArtistPrefix
	}
	if strings.Contains(artist, q) {
		score += weightArtistContains
	}
	if strings.Contains(strings.ToLower(strings.TrimSpace(a.Medium)), q) {
		score += weightMediumContains
	}
	if strings.Contains(strings.ToLower(strings.TrimSpace(a.Department)), q) {
		score += weightDeptContains
	}
	if strings.Contains(strings.ToLower(strings.TrimSpace(a.Date)), q) {
		score += weightDateContains
	}
	for _, w := range s.words {
		if strings.Contains(title, w) {
			score += weightTitleQueryWord
		}
		if strings.Contains(artist, w) {
			score += weightArtistQueryWord
		}
	}
	return score
}

// Score rates how well a record matches query. An empty query scores 0.
func Score(a model.Artwork, query string) int {
	return newScorer(query).score(a)
}

// RankByRelevance returns records sorted by descending score. Records with
// equal scores keep their input order.
func RankByRelevance(records []model.Artwork, query string) []model.Artwork {
	s := newScorer(query)
	type scored struct {
		artwork model.Artwork
		score   int
	}
	ranked := make([]scored, len(records))
	for i, a := range records {
		ranked[i] = scored{artwork: a, score: s.score(a)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]model.Artwork, len(ranked))
	for i, r := range ranked {
		out[i] = r.artwork
	}
	return out
}
