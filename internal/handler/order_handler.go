package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/utils"
	"github.com/kthsports/storefront/pkg/shopapi"
)

// OrderHandler serves the storefront order-request form.
type OrderHandler struct {
	products *store.ProductStore
	orders   *store.OrderStore
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(products *store.ProductStore, orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{products: products, orders: orders}
}

// orderSubmission is the storefront order form plus the product snapshot
// coordinates chosen on the detail page.
type orderSubmission struct {
	models.OrderRequest
	ProductID      string `json:"productId"`
	ProductVariant string `json:"productVariant"`
	ProductSize    string `json:"productSize"`
}

// SubmitOrder validates the form locally, snapshots the product, and submits
// the order request. Validation failures return per-field messages without a
// backend round-trip.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var sub orderSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}

	if fieldErrs := sub.Validate(); len(fieldErrs) > 0 {
		utils.ValidationError(c, fieldErrs)
		return
	}

	product, ok := h.products.GetByID(sub.ProductID)
	if !ok {
		fetched, err := h.products.FetchByID(c.Request.Context(), sub.ProductID)
		if err != nil {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		product = fetched
	}

	order := sub.BuildOrder(product, sub.ProductVariant, sub.ProductSize)
	created, err := h.orders.Create(c.Request.Context(), order)
	if err != nil {
		utils.Error(c, 502, "ORDER_FAILED", shopapi.ErrorMessage(err, "Failed to add order"))
		return
	}

	utils.Success(c, 201, "Order request submitted successfully", gin.H{"order": created})
}
