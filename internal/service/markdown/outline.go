package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	models "mdworkspace/internal/domain/models/markdown"
	mdSvc "mdworkspace/internal/domain/services/markdown"
)

// outlineService implements the OutlineService interface
type outlineService struct {
	md goldmark.Markdown
}

// NewOutlineService creates a new outline service
func NewOutlineService() mdSvc.OutlineService {
	return &outlineService{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Outline lists the document's top-level headings in order. Headings inside
// fenced code, block quotes and lists are not part of the outline.
func (s *outlineService) Outline(ctx context.Context, content string, cursorLine int) (*models.Outline, error) {
	source := []byte(content)
	doc := s.md.Parser().Parse(text.NewReader(source))

	items := make([]models.OutlineItem, 0)
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok {
			continue
		}
		item, ok := outlineItem(heading, source)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return &models.Outline{
		Items:     items,
		ActiveKey: ActiveHeading(items, cursorLine),
	}, nil
}

// outlineItem uses the heading's raw source text, so inline markup is kept
// as written
func outlineItem(heading *ast.Heading, source []byte) (models.OutlineItem, bool) {
	lines := heading.Lines()
	if lines.Len() == 0 {
		return models.OutlineItem{}, false
	}

	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(source))))
	}
	title := strings.TrimSpace(strings.Join(parts, " "))
	if title == "" {
		return models.OutlineItem{}, false
	}

	start := lines.At(0).Start
	offset := bytes.LastIndexByte(source[:start], '\n') + 1
	line := bytes.Count(source[:offset], []byte("\n")) + 1

	return models.OutlineItem{
		Key:    fmt.Sprintf("md:%d", offset),
		Level:  heading.Level,
		Text:   title,
		Line:   line,
		Offset: offset,
	}, true
}

// ActiveHeading returns the key of the last heading at or above cursorLine.
// Returns nil when cursorLine is not set or precedes every heading.
func ActiveHeading(items []models.OutlineItem, cursorLine int) *string {
	if cursorLine <= 0 {
		return nil
	}
	var active *string
	for i := range items {
		if items[i].Line > cursorLine {
			break
		}
		active = &items[i].Key
	}
	return active
}
