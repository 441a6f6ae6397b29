package handler

import (
	"log/slog"
	"net/http"

	wsSvc "mdworkspace/internal/domain/services/workspace"
	"mdworkspace/internal/httputil"
)

// FileHandler handles explicit file reads, writes and copies
type FileHandler struct {
	fileService wsSvc.FileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService wsSvc.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// ReadText returns a file's text content
// POST /api/files/read
func (h *FileHandler) ReadText(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.ReadTextFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	file, err := h.fileService.ReadTextFile(r.Context(), req.Path)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// WriteText replaces a file's content
// POST /api/files/write
func (h *FileHandler) WriteText(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.WriteTextFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	if err := h.fileService.WriteTextFile(r.Context(), &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// WriteBinary writes base64-encoded bytes
// POST /api/files/write-binary
func (h *FileHandler) WriteBinary(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.WriteBinaryFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	if err := h.fileService.WriteBinaryFile(r.Context(), &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}

// Copy copies one file to another path
// POST /api/files/copy
func (h *FileHandler) Copy(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.CopyFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	if err := h.fileService.CopyFile(r.Context(), &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
