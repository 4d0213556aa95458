package catalog

import "strings"

// categoryBySlug maps URL path segments to canonical category strings. Some
// slugs differ from their category ("tshirts" renders as "t-shirt"); a few
// extra slugs exist for collections the navigation links to.
var categoryBySlug = map[string]string{
	"tshirts":     "t-shirt",
	"towels":      "towels",
	"shoes":       "shoes",
	"accessories": "accessories",
	"leggings":    "leggings",
	"shorts":      "shorts",
	"trousers":    "trousers",
	"fleece":      "fleece",
	"jackets":     "jackets",
	"dresses":     "dresses",
	"tops":        "tops",
	"skirts":      "skirts",
	"handbags":    "handbags",
	"jeans":       "jeans",
}

// CategoryForSlug resolves a URL path segment to its canonical category.
func CategoryForSlug(slug string) (string, bool) {
	category, ok := categoryBySlug[strings.ToLower(slug)]
	return category, ok
}

// TypeForSlug resolves a URL path segment to a canonical product type.
func TypeForSlug(slug string) (string, bool) {
	slug = strings.ToLower(slug)
	for _, t := range Types {
		if t == slug {
			return t, true
		}
	}
	return "", false
}

// SelectionFromPath pre-populates a selection from URL path segments, e.g.
// /collections/tshirts/men. Unrecognized segments leave the corresponding
// dimension empty.
func SelectionFromPath(categorySlug, typeSlug string) Selection {
	var sel Selection
	if categorySlug != "" {
		if category, ok := CategoryForSlug(categorySlug); ok {
			sel.Categories = []string{category}
		}
	}
	if typeSlug != "" {
		if typ, ok := TypeForSlug(typeSlug); ok {
			sel.Types = []string{typ}
		}
	}
	return sel
}

// Sections tracks which filter sidebar sections are expanded. Categories and
// types start expanded.
type Sections struct {
	expanded map[string]bool
}

// NewSections returns the initial sidebar state.
func NewSections() *Sections {
	return &Sections{expanded: map[string]bool{
		"categories": true,
		"types":      true,
	}}
}

// Toggle flips a section's expansion state.
func (s *Sections) Toggle(name string) {
	s.expanded[name] = !s.expanded[name]
}

// Expanded reports whether a section is open.
func (s *Sections) Expanded(name string) bool {
	return s.expanded[name]
}
