package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProduct() Product {
	return Product{
		ID:             "p1",
		Name:           "Trail Shoe",
		Brand:          "KTH",
		Type:           ProductTypeMen,
		Category:       "shoes",
		Price:          2999,
		InStock:        true,
		Sizes:          []string{"M", "L", "XL"},
		AvailableSizes: []string{"M", "L"},
		Variants: []Variant{
			{Color: "Black", Images: []string{"https://cdn.example.com/black.jpg"}, AvailableSizes: []string{"M"}},
		},
	}
}

func TestProductValidate_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Product)
		wantErr bool
	}{
		{"valid", func(p *Product) {}, false},
		{"empty name", func(p *Product) { p.Name = "" }, true},
		{"negative price", func(p *Product) { p.Price = -1 }, true},
		{"zero price ok", func(p *Product) { p.Price = 0 }, false},
		{"bad type", func(p *Product) { p.Type = "robots" }, true},
		{"no variants", func(p *Product) { p.Variants = nil }, true},
		{"availableSizes not subset", func(p *Product) { p.AvailableSizes = []string{"XXL"} }, true},
		{"empty availableSizes ok", func(p *Product) { p.AvailableSizes = nil }, false},
		{"variant missing color", func(p *Product) { p.Variants[0].Color = "" }, true},
		{"variant missing images", func(p *Product) { p.Variants[0].Images = nil }, true},
		{"variant missing sizes", func(p *Product) { p.Variants[0].AvailableSizes = nil }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductTypeIsValid(t *testing.T) {
	for _, pt := range []ProductType{ProductTypeMen, ProductTypeWomen, ProductTypeKids, ProductTypeUnisex} {
		assert.True(t, pt.IsValid(), string(pt))
	}
	assert.False(t, ProductType("pets").IsValid())
}
