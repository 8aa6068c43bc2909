package handlers

import (
	"food_order/internal/auth"
	"food_order/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter registers the full API surface. Pulled out of main so handler
// tests can run the same routing against httptest.
func SetupRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	categoryHandler *CategoryHandler,
	orderHandler *OrderHandler,
	tokens *auth.TokenManager,
) *gin.Engine {
	router := gin.Default()

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/users/profile", requireAuth, userHandler.GetProfile)
		api.PUT("/users/profile", requireAuth, userHandler.UpdateProfile)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", requireAuth, requireAdmin, productHandler.Create)
		api.PUT("/products/:id", requireAuth, requireAdmin, productHandler.Update)
		api.DELETE("/products/:id", requireAuth, requireAdmin, productHandler.Delete)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", requireAuth, requireAdmin, categoryHandler.Create)
		api.PUT("/categories/:id", requireAuth, requireAdmin, categoryHandler.Update)
		api.DELETE("/categories/:id", requireAuth, requireAdmin, categoryHandler.Delete)

		api.POST("/orders", requireAuth, orderHandler.Create)
		api.GET("/orders/me", requireAuth, orderHandler.ListMine)
		api.GET("/orders", requireAuth, requireAdmin, orderHandler.ListAll)
		api.GET("/orders/:id", requireAuth, orderHandler.Get)
		api.PUT("/orders/:id", requireAuth, requireAdmin, orderHandler.UpdateStatus)
	}

	return router
}
