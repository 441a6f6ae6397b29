package handler

import (
	"log/slog"
	"net/http"

	wsSvc "mdworkspace/internal/domain/services/workspace"
	"mdworkspace/internal/httputil"
)

// ImageHandler stores images pasted or dropped into a document
type ImageHandler struct {
	imageService wsSvc.ImageService
	logger       *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageService wsSvc.ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		logger:       logger,
	}
}

// Paste saves base64 image bytes next to the document
// POST /api/images/paste
func (h *ImageHandler) Paste(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.SavePastedImageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	saved, err := h.imageService.SavePastedImage(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, saved)
}

// Import copies an image file next to the document
// POST /api/images/import
func (h *ImageHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.ImportImageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	saved, err := h.imageService.ImportImage(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, saved)
}
