package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danfath312/cv-karya-perikanan/internal/config"
	"github.com/danfath312/cv-karya-perikanan/internal/database"
	"github.com/danfath312/cv-karya-perikanan/internal/ratelimit"
	"github.com/danfath312/cv-karya-perikanan/internal/repository"
	"github.com/danfath312/cv-karya-perikanan/internal/services"
	"github.com/danfath312/cv-karya-perikanan/pkg/storage"
	"github.com/danfath312/cv-karya-perikanan/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestServer wires the whole API over an in-memory store, exactly as
// main does, with a generous rate quota so unrelated tests never trip it.
func newTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One pooled connection, or each query could see its own empty
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		AdminSecret:     testSecret,
		SQLitePath:      ":memory:",
		UploadDir:       t.TempDir(),
		MaxUploadBytes:  5 * 1024 * 1024,
		RateLimitMax:    10000,
		RateLimitWindow: time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	t.Cleanup(limiter.Close)

	localStorage, err := storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	require.NoError(t, err)

	productService := services.NewProductService(repository.NewProductRepository(db))
	orderService := services.NewOrderService(repository.NewOrderRepository(db))
	companyService := services.NewCompanyService(repository.NewCompanyRepository(db))
	translationService := services.NewTranslationService(translator.NewClient(cfg.TranslateAPIURL))
	uploadService := services.NewUploadService(localStorage, cfg.MaxUploadBytes)

	router := NewRouter(cfg, limiter, &Handlers{
		Products:  NewProductHandler(productService),
		Orders:    NewOrderHandler(orderService),
		Company:   NewCompanyHandler(companyService),
		Auth:      NewAuthHandler(cfg.AdminSecret),
		Upload:    NewUploadHandler(uploadService, cfg.MaxUploadBytes),
		Translate: NewTranslateHandler(translationService),
		Health:    NewHealthHandler(cfg),
	})

	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("X-Admin-Secret", testSecret)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
