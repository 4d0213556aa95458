package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/auth"
	"github.com/kthsports/storefront/internal/middleware"
	"github.com/kthsports/storefront/internal/store"
	"github.com/kthsports/storefront/internal/theme"
	"github.com/kthsports/storefront/internal/utils"
)

// Deps bundles everything the router needs.
type Deps struct {
	Products      *store.ProductStore
	Orders        *store.OrderStore
	Themes        *theme.Manager
	Authenticator *auth.Authenticator
	Env           string
}

// NewRouter builds the local UI server: public storefront surfaces, the
// admin dashboard endpoints behind the session middleware, and a fallback
// 404 for unmatched routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	catalogHandler := NewCatalogHandler(d.Products)
	productHandler := NewProductHandler(d.Products)
	orderHandler := NewOrderHandler(d.Products, d.Orders)
	themeHandler := NewThemeHandler(d.Themes)
	authHandler := NewAuthHandler(d.Authenticator)
	healthHandler := NewHealthHandler()

	adminProducts := NewAdminProductHandler(d.Products)
	adminOrders := NewAdminOrderHandler(d.Orders)
	session := middleware.NewSessionMiddleware(d.Authenticator)

	r.GET("/health", healthHandler.Health)

	// Storefront
	r.GET("/catalog", catalogHandler.GetCatalog)
	r.GET("/collections/:category", catalogHandler.GetCollection)
	r.GET("/collections/:category/:type", catalogHandler.GetCollection)
	r.GET("/product/:id", productHandler.GetProduct)
	r.POST("/order", orderHandler.SubmitOrder)
	r.GET("/theme", themeHandler.GetTheme)
	r.PUT("/theme", themeHandler.SetTheme)

	// Admin
	r.POST("/admin/login", authHandler.Login)
	r.POST("/admin/logout", authHandler.Logout)

	admin := r.Group("/admin", session.Handle())
	{
		admin.POST("/product", adminProducts.CreateProduct)
		admin.PUT("/product/:id", adminProducts.UpdateProduct)
		admin.DELETE("/product/:id", adminProducts.DeleteProduct)

		admin.GET("/orders", adminOrders.GetOrders)
		admin.POST("/orders/refresh", adminOrders.RefreshOrders)
		admin.PUT("/order/:id/status", adminOrders.UpdateOrderStatus)
		admin.DELETE("/order/:id", adminOrders.DeleteOrder)
	}

	r.NoRoute(func(c *gin.Context) {
		utils.Error(c, 404, "NOT_FOUND", "Page not found")
	})

	return r
}
