package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForSlug(t *testing.T) {
	cases := []struct {
		slug string
		want string
		ok   bool
	}{
		{"tshirts", "t-shirt", true},
		{"TSHIRTS", "t-shirt", true},
		{"shoes", "shoes", true},
		{"jeans", "jeans", true},
		{"mystery", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.slug, func(t *testing.T) {
			got, ok := CategoryForSlug(tc.slug)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectionFromPath(t *testing.T) {
	sel := SelectionFromPath("tshirts", "MEN")
	assert.Equal(t, []string{"t-shirt"}, sel.Categories)
	assert.Equal(t, []string{"men"}, sel.Types)

	sel = SelectionFromPath("nope", "robots")
	assert.Empty(t, sel.Categories)
	assert.Empty(t, sel.Types)

	sel = SelectionFromPath("", "")
	assert.True(t, sel.Empty())
}

func TestSections(t *testing.T) {
	s := NewSections()
	assert.True(t, s.Expanded("categories"))
	assert.True(t, s.Expanded("types"))

	s.Toggle("categories")
	assert.False(t, s.Expanded("categories"))
	s.Toggle("categories")
	assert.True(t, s.Expanded("categories"))
}
