package api

import (
	"net/http"

	admindelivery "marketplace-backend/internal/admin/delivery"
	authdelivery "marketplace-backend/internal/auth/delivery"
	authUsecase "marketplace-backend/internal/auth/usecase"
	imagedelivery "marketplace-backend/internal/image/delivery"
	productdelivery "marketplace-backend/internal/product/delivery"
	userdelivery "marketplace-backend/internal/user/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	authHandler *authdelivery.AuthHandler,
	userHandler *userdelivery.UserHandler,
	productHandler *productdelivery.ProductHandler,
	adminHandler *admindelivery.AdminHandler,
	imageHandler *imagedelivery.ImageHandler,
) {
	requireAuth := authdelivery.AuthMiddleware(authUc)
	requireAdmin := authdelivery.AdminMiddleware()

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.GET("/google", authHandler.GoogleLogin)
			auth.GET("/google/callback", authHandler.GoogleCallback)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// User routes: registration and login are open, the rest requires a
		// valid token. Deleting users is admin-only.
		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("", requireAuth, userHandler.List)
			users.GET("/:id", requireAuth, userHandler.Get)
			users.PUT("/:id", requireAuth, userHandler.Update)
			users.DELETE("/:id", requireAuth, requireAdmin, userHandler.Delete)
		}

		// Product routes: browsing is public, mutation requires a token.
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", requireAuth, productHandler.Create)
			products.PUT("/:id", requireAuth, productHandler.Update)
			products.DELETE("/:id", requireAuth, productHandler.Delete)
		}

		// Admin routes: token check first, then role check. Ordering is
		// mandatory, the role check reads the claims the auth check attached.
		admin := api.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/products", productHandler.List)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)
			admin.GET("/dashboard-stats", adminHandler.DashboardStats)
		}

		// Image upload proxy (protected)
		images := api.Group("/images")
		images.Use(requireAuth)
		{
			images.POST("/upload", imageHandler.Upload)
		}
	}
}
