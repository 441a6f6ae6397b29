package converter

import (
	"context"

	mdSvc "mdworkspace/internal/domain/services/markdown"
)

// textConverter converts plain text files to markdown.
// Plain text is valid markdown, so this is a passthrough.
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() mdSvc.ContentConverter {
	return &textConverter{}
}

func (c *textConverter) Convert(ctx context.Context, input []byte) (string, error) {
	return string(input), nil
}

func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (c *textConverter) Name() string {
	return "plaintext"
}
