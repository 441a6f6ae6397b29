package workspace

import (
	"context"

	"mdworkspace/internal/domain/models/workspace"
)

// FileService handles explicit file reads and writes requested by the editor
type FileService interface {
	// ReadTextFile loads the full contents of a UTF-8 text file
	ReadTextFile(ctx context.Context, path string) (*workspace.TextFile, error)

	// WriteTextFile writes content, creating missing parent directories first
	WriteTextFile(ctx context.Context, req *WriteTextFileRequest) error

	// WriteBinaryFile decodes base64 content and writes it, creating parents
	WriteBinaryFile(ctx context.Context, req *WriteBinaryFileRequest) error

	// CopyFile copies a file, creating the destination's parents
	CopyFile(ctx context.Context, req *CopyFileRequest) error
}

// ImageService stores images next to markdown documents
type ImageService interface {
	// SavePastedImage stores base64 image bytes in the document's img/ folder
	SavePastedImage(ctx context.Context, req *SavePastedImageRequest) (*workspace.SavedImage, error)

	// ImportImage copies an image file into the document's img/ folder
	ImportImage(ctx context.Context, req *ImportImageRequest) (*workspace.SavedImage, error)
}

// ReadTextFileRequest represents a text read request
type ReadTextFileRequest struct {
	Path string `json:"path"`
}

// WriteTextFileRequest represents a text write request
type WriteTextFileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// WriteBinaryFileRequest represents a binary write request
type WriteBinaryFileRequest struct {
	Path          string `json:"path"`
	ContentBase64 string `json:"content_base64"`
}

// CopyFileRequest represents a file copy request
type CopyFileRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SavePastedImageRequest represents an image pasted or dropped into the editor
type SavePastedImageRequest struct {
	DocumentPath  string `json:"document_path"`
	ContentBase64 string `json:"content_base64"`
	Name          string `json:"name,omitempty"` // original file name, used for extension and alt text
	MIME          string `json:"mime,omitempty"` // fallback for the extension
	Alt           string `json:"alt,omitempty"`
}

// ImportImageRequest represents an image picked from disk
type ImportImageRequest struct {
	DocumentPath string `json:"document_path"`
	SourcePath   string `json:"source_path"`
}
