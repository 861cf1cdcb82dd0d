package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
	maxBytes      int64
}

func NewUploadHandler(uploadService services.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, maxBytes: maxBytes}
}

// POST /api/admin/upload - multipart "file" field, optional "fileName".
func (h *UploadHandler) Upload(c *gin.Context) {
	// Bound the whole request body before parsing the form.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	imageURL, err := h.uploadService.SaveImage(c.Request.Context(), header, c.PostForm("fileName"))
	if err != nil {
		respondError(c, err, "upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
