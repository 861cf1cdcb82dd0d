package handlers

import (
	"net/http"

	"github.com/danfath312/cv-karya-perikanan/internal/services"

	"github.com/gin-gonic/gin"
)

type TranslateHandler struct {
	translationService services.TranslationService
}

func NewTranslateHandler(translationService services.TranslationService) *TranslateHandler {
	return &TranslateHandler{translationService: translationService}
}

// POST /api/translate - {text, source, target} -> {translatedText}
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		Source string `json:"source"`
		Target string `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	translated, err := h.translationService.Translate(c.Request.Context(), req.Text, req.Source, req.Target)
	if err != nil {
		respondError(c, err, "translation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"translatedText": translated,
		"source":         defaultLang(req.Source, "id"),
		"target":         defaultLang(req.Target, "en"),
	})
}

func defaultLang(lang, fallback string) string {
	if lang == "" {
		return fallback
	}
	return lang
}
