package handler

import (
	"log/slog"
	"net/http"

	"mdworkspace/internal/domain/models"
	"mdworkspace/internal/domain/services"
	"mdworkspace/internal/httputil"
)

// PreferencesHandler handles preferences and recent files requests
type PreferencesHandler struct {
	service services.PreferencesService
	logger  *slog.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(service services.PreferencesService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		service: service,
		logger:  logger,
	}
}

// GetPreferences retrieves preferences
// GET /api/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.GetPreferences(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prefs)
}

// UpdatePreferences applies a partial update
// PATCH /api/preferences
func (h *PreferencesHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePreferencesRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prefs)
}

// ListRecents returns recently opened files
// GET /api/recents
func (h *PreferencesHandler) ListRecents(w http.ResponseWriter, r *http.Request) {
	recents, err := h.service.ListRecents(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, recents)
}

// AddRecentRequest represents a file being opened
type AddRecentRequest struct {
	Path string `json:"path"`
}

// AddRecent records an opened file
// POST /api/recents
func (h *PreferencesHandler) AddRecent(w http.ResponseWriter, r *http.Request) {
	var req AddRecentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondParseError(w, err)
		return
	}

	recents, err := h.service.AddRecent(r.Context(), req.Path)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, recents)
}
