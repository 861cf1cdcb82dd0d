package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GET /api/admin/company and GET /api/public/company. Returns an empty
// object when no profile exists yet.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetActive()
	if err != nil {
		respondError(c, err, "company info")
		return
	}
	if company == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, company)
}

// POST|PUT /api/admin/company - upsert the single active profile row.
func (h *CompanyHandler) Save(c *gin.Context) {
	var input services.CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	company, created, err := h.companyService.SaveActive(&input)
	if err != nil {
		respondError(c, err, "company info")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, company)
}
