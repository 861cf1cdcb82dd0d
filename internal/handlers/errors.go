package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps a service failure onto the HTTP taxonomy: validation
// → 400, not found → 404, everything else → 500 with a generic message
// (store details go to the log, not the client).
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fallback + " not found"})
	default:
		log.Printf("Error: %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + fallback, "details": err.Error()})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
