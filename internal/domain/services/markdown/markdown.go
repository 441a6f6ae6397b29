package markdown

import (
	"context"

	"mdworkspace/internal/domain/models/markdown"
)

// ContentAnalyzer handles content analysis operations
type ContentAnalyzer interface {
	// CountWords counts words in markdown content
	CountWords(content string) int

	// CleanMarkdown removes markdown syntax from content
	CleanMarkdown(content string) string

	// Stats computes the status bar numbers for a document
	Stats(content string) *markdown.Stats
}

// OutlineService extracts document headings
type OutlineService interface {
	// Outline returns all headings. cursorLine (1-based, 0 for none)
	// selects the active heading.
	Outline(ctx context.Context, content string, cursorLine int) (*markdown.Outline, error)
}

// Renderer turns markdown into sanitized preview HTML
type Renderer interface {
	// Render converts content to HTML. Relative image sources resolve
	// against baseDir when it is set.
	Render(ctx context.Context, req *RenderRequest) (*markdown.Rendered, error)
}

// ContentConverter converts file content to markdown format.
// Each converter handles a specific file type (html, txt, md).
//
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Convert transforms input content to markdown.
	Convert(ctx context.Context, input []byte) (string, error)

	// SupportedExtensions returns file extensions this converter handles.
	// Extensions should include the leading dot (e.g., [".html", ".htm"]).
	SupportedExtensions() []string

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}

// ConversionService routes content to the converter for its format
type ConversionService interface {
	// Convert picks the converter by the filename's extension
	Convert(ctx context.Context, filename string, content []byte) (string, error)

	// ConvertFormat picks the converter by format name ("html", ".txt", ...)
	ConvertFormat(ctx context.Context, format string, content []byte) (string, error)

	// SupportedExtensions lists every extension with a converter
	SupportedExtensions() []string
}

// RenderRequest represents a preview render request
type RenderRequest struct {
	Content string `json:"content"`
	BaseDir string `json:"base_dir,omitempty"`
}

// OutlineRequest represents an outline request
type OutlineRequest struct {
	Content    string `json:"content"`
	CursorLine int    `json:"cursor_line,omitempty"`
}

// ConvertRequest represents a conversion to markdown. Filename selects the
// converter by extension; Format ("html", "txt", "md") may be used instead.
type ConvertRequest struct {
	Filename string `json:"filename,omitempty"`
	Format   string `json:"format,omitempty"`
	Content  string `json:"content"`
}

// StatsRequest represents a status bar stats request
type StatsRequest struct {
	Content string `json:"content"`
}
