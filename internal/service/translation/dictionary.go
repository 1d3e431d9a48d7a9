package translation

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed dictionary.yaml
var embeddedDictionary []byte

type dictionaryFile struct {
	Source string            `yaml:"source"`
	Target string            `yaml:"target"`
	Terms  map[string]string `yaml:"terms"`
}

// Dictionary is the offline fallback: a fixed art vocabulary for one language
// pair, usable in both directions.
type Dictionary struct {
	tables map[string]*termTable
}

type termTable struct {
	exact map[string]string
	terms []term // longest first
}

type term struct {
	pattern     *regexp.Regexp
	translation string
}

type span struct {
	start, end int
	text       string
}

var defaultDictionary = sync.OnceValues(func() (*Dictionary, error) {
	return ParseDictionary(embeddedDictionary)
})

// DefaultDictionary returns the embedded vocabulary.
func DefaultDictionary() (*Dictionary, error) {
	return defaultDictionary()
}

// ParseDictionary decodes a YAML vocabulary. The reverse direction is derived
// from the forward terms; when several terms share a translation the
// alphabetically first term wins.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	source, target := NormalizeLanguage(file.Source), NormalizeLanguage(file.Target)
	if source == "" || target == "" || source == target {
		return nil, fmt.Errorf("dictionary needs two distinct languages, got %q and %q", file.Source, file.Target)
	}

	keys := make([]string, 0, len(file.Terms))
	for k := range file.Terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	forward := make(map[string]string, len(keys))
	reverse := make(map[string]string, len(keys))
	for _, k := range keys {
		from := strings.ToLower(strings.TrimSpace(k))
		to := strings.TrimSpace(file.Terms[k])
		if from == "" || to == "" {
			continue
		}
		if _, ok := forward[from]; !ok {
			forward[from] = to
		}
		back := strings.ToLower(to)
		if _, ok := reverse[back]; !ok {
			reverse[back] = from
		}
	}

	return &Dictionary{tables: map[string]*termTable{
		source + ":" + target: newTermTable(forward),
		target + ":" + source: newTermTable(reverse),
	}}, nil
}

func newTermTable(pairs map[string]string) *termTable {
	t := &termTable{exact: pairs, terms: make([]term, 0, len(pairs))}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		t.terms = append(t.terms, term{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(k)),
			translation: pairs[k],
		})
	}
	return t
}

// Len returns the number of terms for a language pair.
func (d *Dictionary) Len(sourceLang, targetLang string) int {
	table := d.tables[NormalizeLanguage(sourceLang)+":"+NormalizeLanguage(targetLang)]
	if table == nil {
		return 0
	}
	return len(table.terms)
}

// Lookup translates text with the vocabulary: a whole-string match first,
// then whole-word substitution of every known term. It reports false when
// nothing was translated.
func (d *Dictionary) Lookup(text, sourceLang, targetLang string) (string, bool) {
	table := d.tables[NormalizeLanguage(sourceLang)+":"+NormalizeLanguage(targetLang)]
	if table == nil {
		return "", false
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if v, ok := table.exact[strings.ToLower(trimmed)]; ok {
		return matchCase(trimmed, v), true
	}
	return table.substitute(text)
}

// substitute replaces whole-word occurrences, longest terms first. A region
// already replaced is never matched again by a shorter term.
func (t *termTable) substitute(text string) (string, bool) {
	var spans []span
	for _, tm := range t.terms {
		for _, loc := range tm.pattern.FindAllStringIndex(text, -1) {
			if !isWordBounded(text, loc[0], loc[1]) || overlaps(spans, loc[0], loc[1]) {
				continue
			}
			spans = append(spans, span{start: loc[0], end: loc[1], text: matchCase(text[loc[0]:loc[1]], tm.translation)})
		}
	}
	if len(spans) == 0 {
		return "", false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	var sb strings.Builder
	last := 0
	for _, s := range spans {
		sb.WriteString(text[last:s.start])
		sb.WriteString(s.text)
		last = s.end
	}
	sb.WriteString(text[last:])
	return sb.String(), true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWordBounded(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// matchCase capitalizes the replacement when the matched text is capitalized.
func matchCase(matched, replacement string) string {
	first, _ := utf8.DecodeRuneInString(matched)
	if !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return replacement
	}
	return string(unicode.ToUpper(r)) + replacement[size:]
}
