package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"mdworkspace/internal/domain"
	"mdworkspace/internal/httputil"
)

// handleError converts domain errors to HTTP responses. File operation
// failures keep their message so the editor can show it.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		fileErr *domain.FileOpError
		httpErr domain.HTTPError
	)

	switch {
	case errors.As(err, &fileErr):
		status := fileErr.StatusCode()
		if status >= http.StatusInternalServerError {
			logger.Error("file operation failed", "op", fileErr.Op, "path", fileErr.Path, "error", fileErr.Err)
		}
		httputil.RespondErrorWithExtras(w, status, fileErr.Error(), map[string]interface{}{
			"op":   fileErr.Op,
			"path": fileErr.Path,
		})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnsupportedExt):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("request failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
