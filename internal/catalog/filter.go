// Package catalog implements the storefront catalog filtering: a pure
// conjunction of category, type, and per-type size predicates over the
// product list.
package catalog

import (
	"strings"

	"github.com/kthsports/storefront/internal/models"
)

// Fixed catalog lists rendered in the filter sidebar.
var (
	Categories = []string{
		"t-shirt",
		"towels",
		"shoes",
		"accessories",
		"leggings",
		"shorts",
		"trousers",
		"fleece",
		"jackets",
	}

	Types = []string{"men", "women", "kids", "unisex"}

	// Sizes is the full size run offered under each type.
	Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

// Selection is the user's current filter choices. Empty dimensions impose no
// constraint. Selections are UI-local and never persisted.
type Selection struct {
	Categories  []string
	Types       []string
	SizesByType map[string][]string
}

// ToggleCategory adds the category to the selection, or removes it when
// already selected.
func (s *Selection) ToggleCategory(value string) {
	s.Categories = toggle(s.Categories, value)
}

// ToggleType adds the type to the selection, or removes it when already
// selected.
func (s *Selection) ToggleType(value string) {
	s.Types = toggle(s.Types, value)
}

// ToggleSize adds or removes a size choice under the given type.
func (s *Selection) ToggleSize(typ, size string) {
	if s.SizesByType == nil {
		s.SizesByType = make(map[string][]string)
	}
	s.SizesByType[typ] = toggle(s.SizesByType[typ], size)
}

// Clear resets every dimension.
func (s *Selection) Clear() {
	s.Categories = nil
	s.Types = nil
	s.SizesByType = nil
}

// Empty reports whether no dimension constrains the result.
func (s *Selection) Empty() bool {
	if len(s.Categories) > 0 || len(s.Types) > 0 {
		return false
	}
	for _, sizes := range s.SizesByType {
		if len(sizes) > 0 {
			return false
		}
	}
	return true
}

func toggle(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, value)
}

// Filter returns the products satisfying every selected dimension, in input
// order. Category and type use case-insensitive substring containment, so a
// "shoe" filter matches a "shoes" category. An empty dimension matches
// everything.
func Filter(products []models.Product, sel Selection) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, sel) && matchesType(p, sel) && matchesSizes(p, sel) {
			out = append(out, p)
		}
	}
	return out
}

func matchesCategory(p models.Product, sel Selection) bool {
	if len(sel.Categories) == 0 {
		return true
	}
	category := strings.ToLower(p.Category)
	for _, c := range sel.Categories {
		if strings.Contains(category, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func matchesType(p models.Product, sel Selection) bool {
	if len(sel.Types) == 0 {
		return true
	}
	typ := strings.ToLower(string(p.Type))
	for _, t := range sel.Types {
		if strings.Contains(typ, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// matchesSizes passes when no selected type has sizes chosen, or when at
// least one selected type both matches the product's type and has a chosen
// size present in the product's size run.
func matchesSizes(p models.Product, sel Selection) bool {
	if len(sel.Types) == 0 {
		return true
	}

	anyChosen := false
	for _, t := range sel.Types {
		if len(sel.SizesByType[t]) > 0 {
			anyChosen = true
			break
		}
	}
	if !anyChosen {
		return true
	}

	typ := strings.ToLower(string(p.Type))
	for _, t := range sel.Types {
		chosen := sel.SizesByType[t]
		if len(chosen) == 0 || !strings.Contains(typ, strings.ToLower(t)) {
			continue
		}
		for _, size := range p.Sizes {
			for _, c := range chosen {
				if size == c {
					return true
				}
			}
		}
	}
	return false
}

// Related returns up to limit products sharing the category or brand of the
// given product, excluding the product itself. Used by the detail surface.
func Related(products []models.Product, p *models.Product, limit int) []models.Product {
	var out []models.Product
	for _, candidate := range products {
		if candidate.ID == p.ID {
			continue
		}
		if candidate.Category == p.Category || candidate.Brand == p.Brand {
			out = append(out, candidate)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
