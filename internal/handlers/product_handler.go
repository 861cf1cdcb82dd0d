package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/admin/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.GetAll()
	if err != nil {
		respondError(c, err, "products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.Create(&input)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.Update(id, &input)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		respondError(c, err, "product")
		return
	}
	c.Status(http.StatusNoContent)
}

// PATCH /api/admin/products/:id/availability
func (h *ProductHandler) ToggleAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.ToggleAvailability(id)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// PATCH /api/admin/products/:id/stock
func (h *ProductHandler) SetStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Stock *int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock value is required"})
		return
	}

	product, err := h.productService.SetStock(id, *req.Stock)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /api/public/products - available products only, no auth
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.productService.GetAvailable()
	if err != nil {
		respondError(c, err, "products")
		return
	}
	c.JSON(http.StatusOK, products)
}
