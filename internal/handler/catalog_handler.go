package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/catalog"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/utils"
)

// CatalogHandler serves the storefront catalog surfaces.
type CatalogHandler struct {
	products *store.ProductStore
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(products *store.ProductStore) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// GetCatalog returns the filtered catalog. Filters arrive as repeated query
// parameters: category, type, and size entries of the form "type:size".
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	sel := catalog.Selection{
		Categories: c.QueryArray("category"),
		Types:      c.QueryArray("type"),
	}
	for _, entry := range c.QueryArray("size") {
		typ, size, ok := strings.Cut(entry, ":")
		if !ok {
			utils.Error(c, 400, "INVALID_FILTER", "size filter must be type:size")
			return
		}
		if sel.SizesByType == nil {
			sel.SizesByType = make(map[string][]string)
		}
		sel.SizesByType[typ] = append(sel.SizesByType[typ], size)
	}

	filtered := catalog.Filter(h.products.Products(), sel)

	utils.Success(c, 200, "Catalog retrieved successfully", gin.H{
		"products":   filtered,
		"loading":    h.products.Loading(),
		"error":      h.products.Err(),
		"categories": catalog.Categories,
		"types":      catalog.Types,
		"sizes":      catalog.Sizes,
	})
}

// GetCollection serves the slug-addressed collection pages, e.g.
// /collections/tshirts/men. Unrecognized slugs fall back to the full catalog.
func (h *CatalogHandler) GetCollection(c *gin.Context) {
	sel := catalog.SelectionFromPath(c.Param("category"), c.Param("type"))
	filtered := catalog.Filter(h.products.Products(), sel)

	utils.Success(c, 200, "Collection retrieved successfully", gin.H{
		"products":  filtered,
		"selection": gin.H{"categories": sel.Categories, "types": sel.Types},
	})
}
