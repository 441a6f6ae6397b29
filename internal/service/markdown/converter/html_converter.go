package converter

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"

	mdSvc "mdworkspace/internal/domain/services/markdown"
	"mdworkspace/internal/service/markdown/converter/sanitizer"
)

// htmlConverter converts HTML (the WYSIWYG editor's output, pasted HTML,
// .html files) to markdown.
// Two stages:
// 1. Sanitize HTML to remove dangerous elements
// 2. Convert sanitized HTML to markdown
type htmlConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

// NewHTMLConverter creates a new HTML to markdown converter with fenced code
// blocks, "*" emphasis, GFM tables/strikethrough/task lists, ==mark== and
// images that keep their original markdown source.
func NewHTMLConverter() mdSvc.ContentConverter {
	converter := md.NewConverter("", true, &md.Options{
		CodeBlockStyle: "fenced",
		EmDelimiter:    "*",
	})
	converter.Use(plugin.GitHubFlavored())
	converter.AddRules(markRule, imageSourceRule)

	return &htmlConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: converter,
	}
}

// markRule turns <mark> into ==text==
var markRule = md.Rule{
	Filter: []string{"mark"},
	Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
		return md.String("==" + content + "==")
	},
}

// imageSourceRule prefers data-md-src over src so local images stay
// relative to the document after a preview round trip
var imageSourceRule = md.Rule{
	Filter: []string{"img"},
	Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
		src := strings.TrimSpace(selec.AttrOr("data-md-src", ""))
		if src == "" {
			src = strings.TrimSpace(selec.AttrOr("src", ""))
		}
		if src == "" {
			return md.String("")
		}
		alt := strings.ReplaceAll(selec.AttrOr("alt", ""), "]", `\]`)
		return md.String("![" + alt + "](" + src + ")")
	},
}

// Convert transforms HTML to markdown.
func (c *htmlConverter) Convert(ctx context.Context, input []byte) (string, error) {
	sanitized, err := c.sanitizer.Sanitize(string(input))
	if err != nil {
		return "", fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	markdown, err := c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return markdown, nil
}

// SupportedExtensions returns HTML file extensions.
func (c *htmlConverter) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

// Name returns the converter name for logging.
func (c *htmlConverter) Name() string {
	return "html"
}
