package converter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdworkspace/internal/domain"
)

func TestRegistry_SupportedExtensions(t *testing.T) {
	registry := NewConverterRegistry()

	assert.Equal(t,
		[]string{".htm", ".html", ".markdown", ".md", ".text", ".txt"},
		registry.SupportedExtensions(),
	)
}

func TestRegistry_GetConverter(t *testing.T) {
	registry := NewConverterRegistry()

	tests := []struct {
		ext  string
		name string
	}{
		{".html", "html"},
		{"HTML", "html"},
		{" .Htm ", "html"},
		{"md", "markdown"},
		{".txt", "plaintext"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			converter := registry.GetConverter(tt.ext)
			require.NotNil(t, converter)
			assert.Equal(t, tt.name, converter.Name())
		})
	}

	assert.Nil(t, registry.GetConverter(".docx"))
	assert.Nil(t, registry.GetConverter(""))
}

func TestRegistry_ConvertByFilename(t *testing.T) {
	registry := NewConverterRegistry()
	ctx := context.Background()

	out, err := registry.Convert(ctx, "notes.TXT", []byte("plain *text*"))
	require.NoError(t, err)
	assert.Equal(t, "plain *text*", out)

	_, err = registry.Convert(ctx, "report.docx", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedExt))
	assert.Contains(t, err.Error(), ".docx")

	_, err = registry.Convert(ctx, "Makefile", []byte("x"))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedExt))
}

func TestHTMLConverter(t *testing.T) {
	converter := NewHTMLConverter()
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"emphasis", "<p><strong>Hi</strong> <em>there</em></p>", "**Hi** *there*"},
		{"heading", "<h2>Section</h2>", "## Section"},
		{"mark", "<p><mark>key</mark> point</p>", "==key== point"},
		{"script stripped", "<p>ok</p><script>alert(1)</script>", "ok"},
		{
			"preview image keeps source",
			`<p><img src="/api/assets?path=%2Fdocs%2Fimg%2Fa.png" data-md-src="img/a.png" alt="A"></p>`,
			"![A](img/a.png)",
		},
		{"plain image", `<p><img src="https://example.com/x.png" alt="X"></p>`, "![X](https://example.com/x.png)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := converter.Convert(ctx, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestPassthroughConverters(t *testing.T) {
	ctx := context.Background()
	input := []byte("# Title\n\n<b>kept as is</b>\n")

	for _, c := range []interface {
		Convert(context.Context, []byte) (string, error)
	}{NewMarkdownConverter(), NewTextConverter()} {
		out, err := c.Convert(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, string(input), out)
	}
}
