package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/danfath312/cv-karya-perikanan/pkg/translator"
)

type TranslationService interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type translationService struct {
	client *translator.Client
}

func NewTranslationService(client *translator.Client) TranslationService {
	return &translationService{client: client}
}

// Translate defaults to Indonesian → English, the pair the admin panel
// uses to fill the bilingual product fields.
func (s *translationService) Translate(ctx context.Context, text, source, target string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrValidation)
	}
	if source == "" {
		source = "id"
	}
	if target == "" {
		target = "en"
	}

	return s.client.Translate(ctx, text, source, target)
}
