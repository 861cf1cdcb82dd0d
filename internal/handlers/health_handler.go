package handlers

import (
	"net/http"
	"time"

	"github.com/danfath312/cv-karya-perikanan/internal/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// GET /api/health - reports whether required configuration is present
// without exposing any values. Degraded configuration answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	missing := h.cfg.Missing()

	status := "ok"
	code := http.StatusOK
	if len(missing) > 0 {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":         status,
		"hasAdminSecret": h.cfg.AdminSecret != "",
		"hasDatabase":    h.cfg.DatabaseURL != "" || h.cfg.SQLitePath != "",
		"missing":        missing,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
