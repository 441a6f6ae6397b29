package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("forbidden")
	ErrNotADirectory  = errors.New("root is not a directory")
	ErrInvalidUTF8    = errors.New("stream did not contain valid UTF-8")
	ErrUnsupportedExt = errors.New("unsupported file type")
)

// ValidationError indicates invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotADirectoryError is returned when a workspace root does not resolve to
// an existing directory. No tree is produced.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotADirectory, e.Path)
}

func (e *NotADirectoryError) StatusCode() int { return http.StatusBadRequest }

func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory
}

// File operation steps reported by FileOpError
const (
	OpRead         = "read"
	OpWrite        = "write"
	OpCreateDirAll = "create_dir_all"
	OpCopy         = "copy"
)

// FileOpError wraps an I/O failure on an explicit file operation with the
// step that failed. Unwrap exposes the underlying cause so callers can test
// for fs.ErrNotExist and friends.
type FileOpError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOpError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *FileOpError) Unwrap() error { return e.Err }

// StatusCode maps the underlying cause to an HTTP status
func (e *FileOpError) StatusCode() int {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return http.StatusForbidden
	case errors.Is(e.Err, ErrInvalidUTF8):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
