package handler

import (
	"log/slog"
	"net/http"

	models "mdworkspace/internal/domain/models/markdown"
	mdSvc "mdworkspace/internal/domain/services/markdown"
	"mdworkspace/internal/httputil"
)

// MarkdownHandler serves outline, preview, stats and conversion requests
type MarkdownHandler struct {
	outline   mdSvc.OutlineService
	renderer  mdSvc.Renderer
	analyzer  mdSvc.ContentAnalyzer
	converter mdSvc.ConversionService
	logger    *slog.Logger
}

// NewMarkdownHandler creates a new markdown handler
func NewMarkdownHandler(
	outline mdSvc.OutlineService,
	renderer mdSvc.Renderer,
	analyzer mdSvc.ContentAnalyzer,
	converter mdSvc.ConversionService,
	logger *slog.Logger,
) *MarkdownHandler {
	return &MarkdownHandler{
		outline:   outline,
		renderer:  renderer,
		analyzer:  analyzer,
		converter: converter,
		logger:    logger,
	}
}

// Outline returns the document headings and the one containing the cursor
// POST /api/markdown/outline
func (h *MarkdownHandler) Outline(w http.ResponseWriter, r *http.Request) {
	var req mdSvc.OutlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	outline, err := h.outline.Outline(r.Context(), req.Content, req.CursorLine)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, outline)
}

// Render returns sanitized preview HTML
// POST /api/markdown/render
func (h *MarkdownHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req mdSvc.RenderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	rendered, err := h.renderer.Render(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, rendered)
}

// Stats returns line, character and word counts
// POST /api/markdown/stats
func (h *MarkdownHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var req mdSvc.StatsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.analyzer.Stats(req.Content))
}

// Convert turns HTML (or plain text) into markdown
// POST /api/markdown/convert
func (h *MarkdownHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req mdSvc.ConvertRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	var (
		markdown string
		err      error
	)
	switch {
	case req.Format != "":
		markdown, err = h.converter.ConvertFormat(r.Context(), req.Format, []byte(req.Content))
	case req.Filename != "":
		markdown, err = h.converter.Convert(r.Context(), req.Filename, []byte(req.Content))
	default:
		httputil.RespondError(w, http.StatusBadRequest, "filename or format is required")
		return
	}
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.Converted{Markdown: markdown})
}
