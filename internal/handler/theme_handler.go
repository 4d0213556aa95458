package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/theme"
	"github.com/kthsports/storefront/internal/utils"
)

// ThemeHandler exposes the active visual theme.
type ThemeHandler struct {
	themes *theme.Manager
}

// NewThemeHandler constructs a ThemeHandler.
func NewThemeHandler(themes *theme.Manager) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// GetTheme returns the active theme and the available names.
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	utils.Success(c, 200, "Theme retrieved successfully", gin.H{
		"name":      h.themes.CurrentName(),
		"theme":     h.themes.Current(),
		"available": theme.Names(),
	})
}

// SetTheme switches the active theme. Unknown names leave the selection
// unchanged, matching the storefront's behavior.
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}

	if err := h.themes.Change(body.Name); err != nil {
		utils.Error(c, 500, "THEME_FAILED", "Failed to persist theme")
		return
	}
	utils.Success(c, 200, "Theme updated", gin.H{
		"name":  h.themes.CurrentName(),
		"theme": h.themes.Current(),
	})
}
