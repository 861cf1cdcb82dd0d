package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SecretHeader carries the shared admin secret on every admin request.
const SecretHeader = "X-Admin-Secret"

// ValidateSecret checks the shared secret on a request. A missing server
// secret is a configuration fault (500), distinct from a client sending a
// missing or wrong token (401).
func ValidateSecret(c *gin.Context, adminSecret string) (int, string) {
	if adminSecret == "" {
		return http.StatusInternalServerError, "Server configuration error: ADMIN_SECRET not set"
	}

	token := c.GetHeader(SecretHeader)
	if token == "" {
		return http.StatusUnauthorized, "Unauthorized: Missing " + SecretHeader + " header"
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(adminSecret)) != 1 {
		return http.StatusUnauthorized, "Unauthorized: Invalid admin secret"
	}

	return http.StatusOK, ""
}

// AdminAuth guards the /api/admin group with the shared secret.
func AdminAuth(adminSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if status, message := ValidateSecret(c, adminSecret); status != http.StatusOK {
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
