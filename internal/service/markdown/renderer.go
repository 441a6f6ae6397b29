package markdown

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"github.com/zeebo/blake3"

	models "mdworkspace/internal/domain/models/markdown"
	mdSvc "mdworkspace/internal/domain/services/markdown"
	"mdworkspace/internal/service/markdown/converter/sanitizer"
)

// DefaultAssetPrefix is where the HTTP server serves local images
const DefaultAssetPrefix = "/api/assets?path="

var (
	remoteSource   = regexp.MustCompile(`(?i)^(https?:|data:|blob:|file:)`)
	windowsAbsPath = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
)

var baseDirKey = parser.NewContextKey()

// renderer implements the Renderer interface
type renderer struct {
	md          goldmark.Markdown
	sanitizer   *sanitizer.HTMLSanitizer
	cache       *lru.Cache[[32]byte, string]
	assetPrefix string
	logger      *slog.Logger
}

// NewRenderer creates a preview renderer. Rendered HTML for the most recent
// cacheSize (content, base dir) pairs is kept in memory.
func NewRenderer(cacheSize int, assetPrefix string, logger *slog.Logger) (mdSvc.Renderer, error) {
	cache, err := lru.New[[32]byte, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	if assetPrefix == "" {
		assetPrefix = DefaultAssetPrefix
	}

	r := &renderer{
		sanitizer:   sanitizer.NewPreviewSanitizer(),
		cache:       cache,
		assetPrefix: assetPrefix,
		logger:      logger,
	}
	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(&imageSourceTransformer{assetPrefix: assetPrefix}, 100)),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	return r, nil
}

// Render converts markdown to sanitized HTML. Raw HTML in the source is not
// passed through.
func (r *renderer) Render(ctx context.Context, req *mdSvc.RenderRequest) (*models.Rendered, error) {
	key := cacheKey(req.BaseDir, req.Content)
	if cached, ok := r.cache.Get(key); ok {
		return &models.Rendered{HTML: cached}, nil
	}

	pc := parser.NewContext()
	pc.Set(baseDirKey, req.BaseDir)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(req.Content), &buf, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	sanitized, err := r.sanitizer.Sanitize(buf.String())
	if err != nil {
		return nil, fmt.Errorf("sanitize preview: %w", err)
	}

	r.cache.Add(key, sanitized)
	r.logger.DebugContext(ctx, "markdown rendered",
		"bytes_in", len(req.Content),
		"bytes_out", len(sanitized),
		"cache_len", r.cache.Len(),
	)

	return &models.Rendered{HTML: sanitized}, nil
}

func cacheKey(baseDir, content string) [32]byte {
	h := blake3.New()
	h.Write([]byte(baseDir))
	h.Write([]byte{0})
	h.Write([]byte(content))

	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

// imageSourceTransformer points local images at the asset endpoint and
// keeps the original source in data-md-src
type imageSourceTransformer struct {
	assetPrefix string
}

func (t *imageSourceTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	baseDir, _ := pc.Get(baseDirKey).(string)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		raw := string(img.Destination)
		abs, ok := ResolveLocalImage(baseDir, raw)
		if !ok {
			return ast.WalkContinue, nil
		}
		img.SetAttributeString("data-md-src", []byte(raw))
		img.Destination = []byte(t.assetPrefix + url.QueryEscape(abs))
		return ast.WalkContinue, nil
	})
}

// ResolveLocalImage returns the filesystem path an image source refers to.
// Remote sources (http, https, data, blob, file) are not local. Relative
// sources need a base directory.
func ResolveLocalImage(baseDir, src string) (string, bool) {
	raw := strings.TrimSpace(src)
	if raw == "" || remoteSource.MatchString(raw) {
		return "", false
	}
	if windowsAbsPath.MatchString(raw) || strings.HasPrefix(raw, `\\`) || strings.HasPrefix(raw, "/") {
		return raw, true
	}
	if baseDir == "" {
		return "", false
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(raw, "./"), `.\`)
	if unescaped, err := url.PathUnescape(rel); err == nil {
		rel = unescaped
	}
	return filepath.Join(baseDir, filepath.FromSlash(rel)), true
}
