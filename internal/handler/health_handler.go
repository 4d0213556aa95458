package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/utils"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	utils.Success(c, 200, "ok", nil)
}
