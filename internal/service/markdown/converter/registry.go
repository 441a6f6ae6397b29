package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"mdworkspace/internal/domain"
	mdSvc "mdworkspace/internal/domain/services/markdown"
)

var _ mdSvc.ConversionService = (*ConverterRegistry)(nil)

// ConverterRegistry manages content converters and routes files by extension.
//
// Thread-safe for concurrent access.
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[string]mdSvc.ContentConverter // key: file extension (e.g., ".html")
}

// NewConverterRegistry creates a registry with standard converters pre-registered.
func NewConverterRegistry() *ConverterRegistry {
	registry := &ConverterRegistry{
		converters: make(map[string]mdSvc.ContentConverter),
	}

	registry.Register(NewMarkdownConverter())
	registry.Register(NewTextConverter())
	registry.Register(NewHTMLConverter())

	return registry
}

// Register adds a converter and associates it with its supported extensions.
// Extensions are normalized to lowercase with leading dot.
func (r *ConverterRegistry) Register(converter mdSvc.ContentConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range converter.SupportedExtensions() {
		r.converters[normalizeExt(ext)] = converter
	}
}

// GetConverter retrieves a converter for the given file extension.
// Returns nil if no converter is registered for this extension.
//
// Extension lookup is case-insensitive; the leading dot is optional.
func (r *ConverterRegistry) GetConverter(fileExt string) mdSvc.ContentConverter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[normalizeExt(fileExt)]
}

// Convert selects a converter by the filename's extension and converts.
func (r *ConverterRegistry) Convert(ctx context.Context, filename string, content []byte) (string, error) {
	return r.ConvertFormat(ctx, filepath.Ext(filename), content)
}

// ConvertFormat converts content of the given format ("html", ".txt", ...).
func (r *ConverterRegistry) ConvertFormat(ctx context.Context, format string, content []byte) (string, error) {
	converter := r.GetConverter(format)
	if converter == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExt, format)
	}

	return converter.Convert(ctx, content)
}

// SupportedExtensions returns all registered file extensions, sorted.
func (r *ConverterRegistry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
