package workspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"mdworkspace/internal/domain"
	models "mdworkspace/internal/domain/models/workspace"
	wsSvc "mdworkspace/internal/domain/services/workspace"
)

// imageDir is where images live, relative to the owning document
const imageDir = "img"

const (
	defaultImageExt = "png"
	defaultImageAlt = "image"
)

var imageExts = map[string]string{
	"png":  "png",
	"jpg":  "jpg",
	"jpeg": "jpg",
	"gif":  "gif",
	"webp": "webp",
	"bmp":  "bmp",
	"svg":  "svg",
}

var imageMIMEs = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/bmp":     "bmp",
	"image/svg+xml": "svg",
}

var trailingExt = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)

// imageService implements the ImageService interface
type imageService struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(logger *slog.Logger) wsSvc.ImageService {
	return &imageService{
		now:    time.Now,
		logger: logger,
	}
}

// SavePastedImage writes pasted image bytes into <doc dir>/img/
func (s *imageService) SavePastedImage(ctx context.Context, req *wsSvc.SavePastedImageRequest) (*models.SavedImage, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.DocumentPath, pathRules...),
		validation.Field(&req.ContentBase64, validation.Required),
	); err != nil {
		return nil, toValidationError(err)
	}

	data, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		return nil, &domain.ValidationError{Message: "content_base64: " + err.Error()}
	}

	fileName := s.imageFileName(ImageExt(req.Name, req.MIME))
	abs := filepath.Join(filepath.Dir(req.DocumentPath), imageDir, fileName)
	if err := writeFile(abs, data); err != nil {
		return nil, err
	}

	alt := req.Alt
	if alt == "" {
		alt = trailingExt.ReplaceAllString(req.Name, "")
	}
	if alt == "" {
		alt = defaultImageAlt
	}

	s.logger.InfoContext(ctx, "pasted image saved",
		"document", req.DocumentPath,
		"image", abs,
		"bytes", len(data),
	)

	return &models.SavedImage{Rel: imageDir + "/" + fileName, Abs: abs, Alt: alt}, nil
}

// ImportImage copies an image file from disk into <doc dir>/img/
func (s *imageService) ImportImage(ctx context.Context, req *wsSvc.ImportImageRequest) (*models.SavedImage, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.DocumentPath, pathRules...),
		validation.Field(&req.SourcePath, pathRules...),
	); err != nil {
		return nil, toValidationError(err)
	}

	name := filepath.Base(req.SourcePath)
	fileName := s.imageFileName(ImageExt(name, ""))
	abs := filepath.Join(filepath.Dir(req.DocumentPath), imageDir, fileName)

	n, err := copyFile(req.SourcePath, abs)
	if err != nil {
		return nil, err
	}

	alt := trailingExt.ReplaceAllString(name, "")
	if alt == "" {
		alt = fileName
	}

	s.logger.InfoContext(ctx, "image imported",
		"document", req.DocumentPath,
		"source", req.SourcePath,
		"image", abs,
		"bytes", n,
	)

	return &models.SavedImage{Rel: imageDir + "/" + fileName, Abs: abs, Alt: alt}, nil
}

// imageFileName builds "<UTC stamp>-<6 hex>.<ext>"
func (s *imageService) imageFileName(ext string) string {
	stamp := s.now().UTC().Format("20060102T150405")
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%s.%s", stamp, random, ext)
}

// ImageExt picks a known image extension from the file name, then the MIME
// type, and falls back to png. "jpeg" normalizes to "jpg".
func ImageExt(name, mime string) string {
	if m := trailingExt.FindString(name); m != "" {
		if ext, ok := imageExts[strings.ToLower(m[1:])]; ok {
			return ext
		}
	}
	if ext, ok := imageMIMEs[strings.ToLower(mime)]; ok {
		return ext
	}
	return defaultImageExt
}
