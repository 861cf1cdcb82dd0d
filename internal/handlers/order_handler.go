package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /api/admin/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAll()
	if err != nil {
		respondError(c, err, "orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/admin/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		respondError(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// PUT /api/admin/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Update(id, &input)
	if err != nil {
		respondError(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// DELETE /api/admin/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		respondError(c, err, "order")
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/public/orders - the order form's write path, no auth
func (h *OrderHandler) CreatePublic(c *gin.Context) {
	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreatePublic(&input)
	if err != nil {
		respondError(c, err, "order")
		return
	}
	c.JSON(http.StatusCreated, order)
}
