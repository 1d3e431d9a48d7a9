package service

import (
	"strings"

	"galeria/backend/internal/model"
)

// Category is one entry of the fixed facet taxonomy.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryPainting    Category = "painting"
	CategorySculpture   Category = "sculpture"
	CategoryPhotography Category = "photography"
	CategoryDrawing     Category = "drawing"
	CategoryPrint       Category = "print"
	CategoryCeramic     Category = "ceramic"
	CategoryTextile     Category = "textile"
	CategoryGlass       Category = "glass"
	CategoryDecorative  Category = "decorative"
	CategoryAncient     Category = "ancient"
	CategoryAsian       Category = "asian"
	CategoryModern      Category = "modern"
	CategoryManuscript  Category = "manuscript"
)

// CategoryInfo describes a category for clients.
type CategoryInfo struct {
	ID    Category
	Label string
}

type categoryRule struct {
	id         Category
	label      string
	medium     []string
	department []string
	title      []string
}

func (r categoryRule) match(medium, department, title string) bool {
	return containsAny(medium, r.medium) || containsAny(department, r.department) || containsAny(title, r.title)
}

var categoryRules = []categoryRule{
	{
		id:         CategoryPainting,
		label:      "Painting",
		medium:     []string{"paint", "oil", "acrylic", "watercolor", "gouache", "tempera", "canvas", "panel", "fresco", "mural", "enamel", "lacquer"},
		department: []string{"painting", "arts of africa"},
		title:      []string{"portrait", "landscape"},
	},
	{
		id:    CategorySculpture,
		label: "Sculpture",
		medium: []string{"sculpture", "bronze", "marble", "stone", "carved", "cast", "terracotta", "plaster", "clay",
			"granite", "limestone", "sandstone", "alabaster", "basalt", "statue", "bust", "relief", "figurine"},
		department: []string{"sculpture", "sculptural"},
		title:      []string{"statue", "bust", "figure"},
	},
	{
		id:    CategoryPhotography,
		label: "Photography",
		medium: []string{"photo", "gelatin", "albumen", "cyanotype", "daguerreotype", "silver print", "platinum",
			"palladium", "tintype", "ambrotype"},
		department: []string{"photo"},
		title:      []string{"photograph"},
	},
	{
		id:    CategoryDrawing,
		label: "Drawing",
		medium: []string{"draw", "sketch", "charcoal", "pencil", "graphite", "chalk", "pastel", "crayon", "ink on paper",
			"pen and ink", "conte", "sanguine", "silverpoint", "wash"},
		department: []string{"draw", "works on paper"},
		title:      []string{"sketch", "study"},
	},
	{
		id:    CategoryPrint,
		label: "Print",
		medium: []string{"print", "etching", "lithograph", "woodcut", "engraving", "silkscreen", "screenprint", "linocut",
			"aquatint", "mezzotint", "drypoint", "monotype", "woodblock", "chine-coll"},
		department: []string{"print"},
	},
	{
		id:    CategoryCeramic,
		label: "Ceramic",
		medium: []string{"ceramic", "pottery", "porcelain", "earthenware", "stoneware", "faience", "majolica", "raku",
			"terra cotta", "vessel", "jar", "vase"},
		department: []string{"ceramic"},
		title:      []string{"vase", "jar"},
	},
	{
		id:         CategoryTextile,
		label:      "Textile",
		medium:     []string{"textile", "fabric", "tapestry", "embroidery", "weaving", "silk", "linen", "cotton"},
		department: []string{"textile"},
	},
	{
		id:         CategoryGlass,
		label:      "Glass",
		medium:     []string{"glass"},
		department: []string{"glass"},
	},
	{
		id:    CategoryDecorative,
		label: "Decorative arts",
		medium: []string{"metal", "gold", "silver", "copper", "iron", "brass", "jewelry", "jewel", "ornament", "wood",
			"furniture", "carving"},
		department: []string{"metalwork", "jewelry", "furniture", "decorative arts"},
	},
	{
		id:         CategoryAncient,
		label:      "Ancient art",
		department: []string{"ancient", "greek", "roman", "egyptian", "near eastern", "medieval"},
	},
	{
		id:         CategoryAsian,
		label:      "Asian art",
		department: []string{"asian", "chinese", "japanese", "indian", "korean"},
	},
	{
		id:         CategoryModern,
		label:      "Modern and contemporary",
		department: []string{"modern", "contemporary"},
	},
	{
		id:         CategoryManuscript,
		label:      "Manuscript",
		medium:     []string{"manuscript", "illuminated", "book"},
		department: []string{"manuscript"},
	},
}

// Categories returns the taxonomy with "all" first.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categoryRules)+1)
	out = append(out, CategoryInfo{ID: CategoryAll, Label: "All"})
	for _, r := range categoryRules {
		out = append(out, CategoryInfo{ID: r.id, Label: r.label})
	}
	return out
}

// ParseCategory accepts a taxonomy id, case-insensitive. Empty means "all".
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c == CategoryAll {
		return CategoryAll, true
	}
	for _, r := range categoryRules {
		if r.id == c {
			return c, true
		}
	}
	return "", false
}

// DetectCategories returns every category the record belongs to, in taxonomy order.
func DetectCategories(a model.Artwork) []Category {
	medium, department, title := lowerFields(a)
	var out []Category
	for _, r := range categoryRules {
		if r.match(medium, department, title) {
			out = append(out, r.id)
		}
	}
	return out
}

// MatchesCategory reports whether the record belongs to c. Every record matches "all".
func MatchesCategory(a model.Artwork, c Category) bool {
	if c == "" || c == CategoryAll {
		return true
	}
	medium, department, title := lowerFields(a)
	for _, r := range categoryRules {
		if r.id == c {
			return r.match(medium, department, title)
		}
	}
	return false
}

// AvailableCategories lists the categories present in records, "all" first.
func AvailableCategories(records []model.Artwork) []Category {
	seen := make(map[Category]bool, len(categoryRules))
	for _, a := range records {
		for _, c := range DetectCategories(a) {
			seen[c] = true
		}
	}
	out := []Category{CategoryAll}
	for _, r := range categoryRules {
		if seen[r.id] {
			out = append(out, r.id)
		}
	}
	return out
}

func lowerFields(a model.Artwork) (medium, department, title string) {
	return strings.ToLower(a.Medium), strings.ToLower(a.Department), strings.ToLower(a.Title)
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
