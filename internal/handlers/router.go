package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/config"
	"github.com/danfath312/cv-karya-perikanan/internal/middleware"
	"github.com/danfath312/cv-karya-perikanan/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Products  *ProductHandler
	Orders    *OrderHandler
	Company   *CompanyHandler
	Auth      *AuthHandler
	Upload    *UploadHandler
	Translate *TranslateHandler
	Health    *HealthHandler
}

// NewRouter mounts all API routes. The admin group carries rate limiting
// and shared-secret auth; login validates the secret itself and health
// checks carry neither.
func NewRouter(cfg *config.Config, limiter ratelimit.Limiter, h *Handlers) *gin.Engine {
	router := gin.Default()

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	router.GET("/api/health", h.Health.Health)
	router.GET("/api/admin/health", h.Health.Health)
	router.POST("/api/admin/login", h.Auth.Login)
	router.POST("/api/translate", h.Translate.Translate)

	public := router.Group("/api/public")
	{
		public.GET("/company", h.Company.Get)
		public.GET("/products", h.Products.ListPublic)
		public.POST("/orders", h.Orders.CreatePublic)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.RateLimit(limiter), middleware.AdminAuth(cfg.AdminSecret))
	{
		admin.GET("/products", h.Products.List)
		admin.POST("/products", h.Products.Create)
		admin.GET("/products/:id", h.Products.Get)
		admin.PUT("/products/:id", h.Products.Update)
		admin.DELETE("/products/:id", h.Products.Delete)
		admin.PATCH("/products/:id/availability", h.Products.ToggleAvailability)
		admin.PATCH("/products/:id/stock", h.Products.SetStock)

		admin.GET("/orders", h.Orders.List)
		admin.GET("/orders/:id", h.Orders.Get)
		admin.PUT("/orders/:id", h.Orders.Update)
		admin.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		admin.DELETE("/orders/:id", h.Orders.Delete)

		admin.GET("/company", h.Company.Get)
		admin.POST("/company", h.Company.Save)
		admin.PUT("/company", h.Company.Save)

		admin.POST("/upload", h.Upload.Upload)
	}

	// Uploaded images are served straight from the upload directory.
	router.Static("/uploads", cfg.UploadDir)

	return router
}
