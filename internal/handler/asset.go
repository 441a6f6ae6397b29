package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mdworkspace/internal/httputil"
)

// assetExts are the file types the preview may load through the asset route
var assetExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".bmp": true, ".svg": true, ".avif": true, ".ico": true,
}

// AssetHandler streams local images referenced by rendered previews
type AssetHandler struct {
	logger *slog.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(logger *slog.Logger) *AssetHandler {
	return &AssetHandler{logger: logger}
}

// Serve streams an image file
// GET /api/assets?path=<absolute path>
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" || !filepath.IsAbs(path) {
		httputil.RespondError(w, http.StatusBadRequest, "path must be absolute")
		return
	}
	if !assetExts[strings.ToLower(filepath.Ext(path))] {
		httputil.RespondError(w, http.StatusForbidden, "not an image")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			httputil.RespondError(w, http.StatusNotFound, "asset not found")
		case errors.Is(err, fs.ErrPermission):
			httputil.RespondError(w, http.StatusForbidden, "asset not readable")
		default:
			h.logger.Error("open asset", "path", path, "error", err)
			httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		httputil.RespondError(w, http.StatusNotFound, "asset not found")
		return
	}

	// SVG can carry script; never let it run in the webview origin
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
