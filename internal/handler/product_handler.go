package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/catalog"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/utils"
)

const relatedLimit = 4

// ProductHandler serves the product detail surface.
type ProductHandler struct {
	products *store.ProductStore
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products *store.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// GetProduct returns one product with its rendered description and related
// products. The cached list is consulted first; a miss falls back to a
// fetch-by-id against the backend.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, ok := h.products.GetByID(id)
	if !ok {
		fetched, err := h.products.FetchByID(c.Request.Context(), id)
		if err != nil {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		product = fetched
	}

	utils.Success(c, 200, "Product retrieved successfully", gin.H{
		"product":         product,
		"descriptionHtml": renderDescription(product.Description),
		"related":         catalog.Related(h.products.Products(), product, relatedLimit),
	})
}
