package models

import (
	"fmt"
	"time"
)

// ProductType enumerates the supported product types.
type ProductType string

const (
	ProductTypeMen    ProductType = "men"
	ProductTypeWomen  ProductType = "women"
	ProductTypeKids   ProductType = "kids"
	ProductTypeUnisex ProductType = "unisex"
)

// IsValid reports whether the product type is one of the fixed enumeration values.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeMen, ProductTypeWomen, ProductTypeKids, ProductTypeUnisex:
		return true
	}
	return false
}

// Variant is a colorway of a product. Images hold either backend URLs or,
// while a create/update request is being assembled, upload field tokens.
type Variant struct {
	ID             string   `json:"_id,omitempty"`
	Color          string   `json:"color"`
	Images         []string `json:"images"`
	AvailableSizes []string `json:"availableSizes"`
}

// Product represents a catalog product as returned by the backend.
// The backend assigns identity; the client never invents IDs.
type Product struct {
	ID             string      `json:"_id"`
	Name           string      `json:"name"`
	Brand          string      `json:"brand"`
	Type           ProductType `json:"type"`
	Category       string      `json:"category"`
	Price          float64     `json:"price"`
	Description    string      `json:"description"`
	InStock        bool        `json:"inStock"`
	Sizes          []string    `json:"sizes"`
	AvailableSizes []string    `json:"availableSizes"`
	Variants       []Variant   `json:"variants"`
	CreatedAt      time.Time   `json:"createdAt,omitempty"`
	UpdatedAt      time.Time   `json:"updatedAt,omitempty"`
}

// Validate checks the invariants a product must satisfy before it is sent to
// the backend: at least one variant, non-negative price, and availableSizes
// being a subset of the full size run. Variant-level guardrails mirror the
// admin form checks.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must be non-negative")
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("invalid product type %q", p.Type)
	}
	if len(p.Variants) == 0 {
		return fmt.Errorf("product must have at least one variant")
	}
	if !subset(p.AvailableSizes, p.Sizes) {
		return fmt.Errorf("availableSizes must be a subset of sizes")
	}
	for i, v := range p.Variants {
		if v.Color == "" {
			return fmt.Errorf("variant %d: color is required", i)
		}
		if len(v.Images) == 0 {
			return fmt.Errorf("variant %d: at least one image is required", i)
		}
		if len(v.AvailableSizes) == 0 {
			return fmt.Errorf("variant %d: at least one available size is required", i)
		}
	}
	return nil
}

func subset(sub, super []string) bool {
	for _, s := range sub {
		found := false
		for _, t := range super {
			if s == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
