package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/danfath312/cv-karya-perikanan/pkg/storage"

	"github.com/google/uuid"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type UploadService interface {
	SaveImage(ctx context.Context, header *multipart.FileHeader, requestedName string) (string, error)
}

type uploadService struct {
	storage  storage.Storage
	maxBytes int64
}

func NewUploadService(st storage.Storage, maxBytes int64) UploadService {
	return &uploadService{storage: st, maxBytes: maxBytes}
}

// SaveImage persists one uploaded file and returns its public URL. The
// stored name is a uuid prefix plus a sanitized form of the client name,
// so concurrent uploads of the same file never collide.
func (s *uploadService) SaveImage(ctx context.Context, header *multipart.FileHeader, requestedName string) (string, error) {
	if header == nil {
		return "", fmt.Errorf("%w: no file provided", ErrValidation)
	}
	if header.Size > s.maxBytes {
		return "", fmt.Errorf("%w: file exceeds the %d byte limit", ErrValidation, s.maxBytes)
	}

	name := requestedName
	if name == "" {
		name = header.Filename
	}
	name = sanitizeFilename(name, header.Filename)

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	finalName := uuid.NewString() + "_" + name
	limited := io.LimitReader(f, s.maxBytes)

	url, err := s.storage.Save(ctx, finalName, limited)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return url, nil
}

func sanitizeFilename(name, original string) string {
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if len(name) > 100 {
		name = name[:100]
	}

	ext := filepath.Ext(name)
	if ext == "" {
		ext = filepath.Ext(original)
	}
	if name == "" || name == ext {
		name = "upload"
	}
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}
