package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/models"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/utils"
	"github.com/kthsports/storefront/pkg/shopapi"
)

// AdminOrderHandler serves the admin dashboard's order management endpoints.
type AdminOrderHandler struct {
	orders *store.OrderStore
}

// NewAdminOrderHandler constructs an AdminOrderHandler.
func NewAdminOrderHandler(orders *store.OrderStore) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders}
}

// GetOrders returns the cached orders, optionally narrowed by status or
// customer email. The narrowing is local; refresh comes from the background
// worker or an explicit refresh.
func (h *AdminOrderHandler) GetOrders(c *gin.Context) {
	var orders []models.Order
	switch {
	case c.Query("status") != "":
		status := models.OrderStatus(c.Query("status"))
		if !status.IsValid() {
			utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
			return
		}
		orders = h.orders.ByStatus(status)
	case c.Query("email") != "":
		orders = h.orders.ByEmail(c.Query("email"))
	default:
		orders = h.orders.Orders()
	}

	utils.Success(c, 200, "Orders retrieved successfully", gin.H{
		"orders":  orders,
		"loading": h.orders.Loading(),
		"error":   h.orders.Err(),
	})
}

// RefreshOrders re-fetches the full order list from the backend.
func (h *AdminOrderHandler) RefreshOrders(c *gin.Context) {
	if err := h.orders.FetchAll(c.Request.Context()); err != nil {
		utils.Error(c, 502, "FETCH_FAILED", "Failed to fetch orders")
		return
	}
	utils.Success(c, 200, "Orders refreshed successfully", gin.H{"orders": h.orders.Orders()})
}

// UpdateOrderStatus moves an order to a new lifecycle state.
func (h *AdminOrderHandler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}
	if !body.Status.IsValid() {
		utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
		return
	}

	order, err := h.orders.Update(c.Request.Context(), c.Param("id"), gin.H{"status": body.Status})
	if err != nil {
		utils.Error(c, 502, "UPDATE_FAILED", shopapi.ErrorMessage(err, "Failed to update order"))
		return
	}
	utils.Success(c, 200, "Order updated successfully", gin.H{"order": order})
}

// DeleteOrder removes an order.
func (h *AdminOrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, 502, "DELETE_FAILED", shopapi.ErrorMessage(err, "Failed to delete order"))
		return
	}
	utils.Success(c, 200, "Order deleted successfully", nil)
}
