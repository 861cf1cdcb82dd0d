package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	adminSecret string
}

func NewAuthHandler(adminSecret string) *AuthHandler {
	return &AuthHandler{adminSecret: adminSecret}
}

// POST /api/admin/login - verifies the shared secret so the admin panel
// can confirm credentials before storing them client-side. Deliberately
// outside the rate-limited group.
func (h *AuthHandler) Login(c *gin.Context) {
	if status, message := middleware.ValidateSecret(c, h.adminSecret); status != http.StatusOK {
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
