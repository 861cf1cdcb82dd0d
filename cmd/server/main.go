package main

import (
	"log"

	"github.com/danfath312/cv-karya-perikanan/internal/config"
	"github.com/danfath312/cv-karya-perikanan/internal/database"
	"github.com/danfath312/cv-karya-perikanan/internal/handlers"
	"github.com/danfath312/cv-karya-perikanan/internal/ratelimit"
	"github.com/danfath312/cv-karya-perikanan/internal/repository"
	"github.com/danfath312/cv-karya-perikanan/internal/services"
	"github.com/danfath312/cv-karya-perikanan/pkg/storage"
	"github.com/danfath312/cv-karya-perikanan/pkg/translator"
	"github.com/danfath312/cv-karya-perikanan/web"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if missing := cfg.Missing(); len(missing) > 0 {
		// The server still starts so the health endpoint can report the
		// degraded state; admin requests answer 500 until fixed.
		log.Printf("Warning: missing configuration: %v", missing)
	}

	// Initialize database and seed defaults
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Rate limiter: shared via Redis when configured, per-process otherwise
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		redisLimiter, err := ratelimit.NewRedisLimiter(cfg.RedisURL, cfg.RateLimitMax, cfg.RateLimitWindow)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		limiter = redisLimiter
		log.Println("Rate limiting backed by Redis")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	// File storage for uploaded images
	localStorage, err := storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("Failed to prepare upload storage:", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Initialize services
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo)
	companyService := services.NewCompanyService(companyRepo)
	translationService := services.NewTranslationService(translator.NewClient(cfg.TranslateAPIURL))
	uploadService := services.NewUploadService(localStorage, cfg.MaxUploadBytes)

	// Initialize handlers and routes
	router := handlers.NewRouter(cfg, limiter, &handlers.Handlers{
		Products:  handlers.NewProductHandler(productService),
		Orders:    handlers.NewOrderHandler(orderService),
		Company:   handlers.NewCompanyHandler(companyService),
		Auth:      handlers.NewAuthHandler(cfg.AdminSecret),
		Upload:    handlers.NewUploadHandler(uploadService, cfg.MaxUploadBytes),
		Translate: handlers.NewTranslateHandler(translationService),
		Health:    handlers.NewHealthHandler(cfg),
	})

	// Embedded public site and admin panel
	web.Register(router)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
