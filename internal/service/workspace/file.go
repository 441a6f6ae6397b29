package workspace

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mdworkspace/internal/domain"
	models "mdworkspace/internal/domain/models/workspace"
	wsSvc "mdworkspace/internal/domain/services/workspace"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// fileService implements the FileService interface
type fileService struct {
	logger *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(logger *slog.Logger) wsSvc.FileService {
	return &fileService{logger: logger}
}

// ReadTextFile loads a whole file as UTF-8 text
func (s *fileService) ReadTextFile(ctx context.Context, path string) (*models.TextFile, error) {
	if err := validation.Validate(path, pathRules...); err != nil {
		return nil, toValidationError(validation.Errors{"path": err})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FileOpError{Op: domain.OpRead, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &domain.FileOpError{Op: domain.OpRead, Path: path, Err: domain.ErrInvalidUTF8}
	}

	s.logger.DebugContext(ctx, "text file read", "path", path, "bytes", len(data))

	return &models.TextFile{Path: path, Content: string(data)}, nil
}

// WriteTextFile writes content to path, creating missing parent directories
// first (e.g. "Save As" into a new folder)
func (s *fileService) WriteTextFile(ctx context.Context, req *wsSvc.WriteTextFileRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Path, pathRules...),
	); err != nil {
		return toValidationError(err)
	}

	if err := writeFile(req.Path, []byte(req.Content)); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "text file written", "path", req.Path, "bytes", len(req.Content))
	return nil
}

// WriteBinaryFile decodes standard base64 content and writes it
func (s *fileService) WriteBinaryFile(ctx context.Context, req *wsSvc.WriteBinaryFileRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Path, pathRules...),
	); err != nil {
		return toValidationError(err)
	}

	data, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		return &domain.ValidationError{Message: "content_base64: " + err.Error()}
	}

	if err := writeFile(req.Path, data); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "binary file written", "path", req.Path, "bytes", len(data))
	return nil
}

// CopyFile copies req.From to req.To, creating the destination's parents
func (s *fileService) CopyFile(ctx context.Context, req *wsSvc.CopyFileRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.From, pathRules...),
		validation.Field(&req.To, pathRules...),
	); err != nil {
		return toValidationError(err)
	}

	n, err := copyFile(req.From, req.To)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "file copied", "from", req.From, "to", req.To, "bytes", n)
	return nil
}

// ensureParent creates all missing ancestors of path
func ensureParent(path string) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return &domain.FileOpError{Op: domain.OpCreateDirAll, Path: parent, Err: err}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return &domain.FileOpError{Op: domain.OpWrite, Path: path, Err: err}
	}
	return nil
}

func copyFile(from, to string) (int64, error) {
	src, err := os.Open(from)
	if err != nil {
		return 0, &domain.FileOpError{Op: domain.OpRead, Path: from, Err: err}
	}
	defer src.Close()

	if err := ensureParent(to); err != nil {
		return 0, err
	}

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return 0, &domain.FileOpError{Op: domain.OpWrite, Path: to, Err: err}
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return n, &domain.FileOpError{Op: domain.OpCopy, Path: to, Err: err}
	}
	if err := dst.Close(); err != nil {
		return n, &domain.FileOpError{Op: domain.OpWrite, Path: to, Err: err}
	}
	return n, nil
}
