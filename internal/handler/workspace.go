package handler

import (
	"log/slog"
	"net/http"

	wsSvc "mdworkspace/internal/domain/services/workspace"
	"mdworkspace/internal/httputil"
)

// WorkspaceHandler handles HTTP requests for workspace scans
type WorkspaceHandler struct {
	scanner wsSvc.ScannerService
	logger  *slog.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(scanner wsSvc.ScannerService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		scanner: scanner,
		logger:  logger,
	}
}

// Scan returns the markdown tree under a root directory
// POST /api/workspace/scan
func (h *WorkspaceHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req wsSvc.ScanWorkspaceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	tree, err := h.scanner.ScanWorkspace(r.Context(), req.Root)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}
