package workspace

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wsSvc "mdworkspace/internal/domain/services/workspace"
)

var savedName = regexp.MustCompile(`^20261015T093000-[0-9a-f]{6}\.(png|jpg|gif|webp|bmp|svg)$`)

func fixedImageService() *imageService {
	return &imageService{
		now:    func() time.Time { return time.Date(2026, 10, 15, 11, 30, 0, 0, time.FixedZone("CEST", 2*60*60)) },
		logger: discardLogger(),
	}
}

func TestSavePastedImage(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "notes", "today.md")
	payload := []byte("GIF89a...")

	saved, err := fixedImageService().SavePastedImage(context.Background(), &wsSvc.SavePastedImageRequest{
		DocumentPath:  doc,
		ContentBase64: base64.StdEncoding.EncodeToString(payload),
		Name:          "Screen Shot.GIF",
	})
	require.NoError(t, err)

	fileName := filepath.Base(saved.Abs)
	assert.Regexp(t, savedName, fileName)
	assert.Equal(t, ".gif", filepath.Ext(fileName))
	assert.Equal(t, "img/"+fileName, saved.Rel)
	assert.Equal(t, filepath.Join(dir, "notes", "img", fileName), saved.Abs)
	assert.Equal(t, "Screen Shot", saved.Alt)

	got, err := os.ReadFile(saved.Abs)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSavePastedImage_UnnamedUsesDefaultAlt(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "doc.md")

	saved, err := fixedImageService().SavePastedImage(context.Background(), &wsSvc.SavePastedImageRequest{
		DocumentPath:  doc,
		ContentBase64: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		MIME:          "image/jpeg",
	})
	require.NoError(t, err)

	assert.Equal(t, ".jpg", filepath.Ext(saved.Abs))
	assert.Equal(t, "image", saved.Alt)
}

func TestImportImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photos", "cat.jpeg")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0644))
	doc := filepath.Join(dir, "ws", "pets.md")

	saved, err := fixedImageService().ImportImage(context.Background(), &wsSvc.ImportImageRequest{
		DocumentPath: doc,
		SourcePath:   src,
	})
	require.NoError(t, err)

	assert.Regexp(t, savedName, filepath.Base(saved.Abs))
	assert.Equal(t, ".jpg", filepath.Ext(saved.Abs))
	assert.Equal(t, "cat", saved.Alt)
	assert.Equal(t, filepath.Join(dir, "ws", "img"), filepath.Dir(saved.Abs))

	got, err := os.ReadFile(saved.Abs)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(got))
}

func TestImageExt(t *testing.T) {
	tests := []struct {
		name, mime, want string
	}{
		{"a.PNG", "", "png"},
		{"a.jpeg", "", "jpg"},
		{"a.svg", "image/png", "svg"},
		{"a.tiff", "image/webp", "webp"},
		{"clipboard", "IMAGE/SVG+XML", "svg"},
		{"", "", "png"},
		{"a.heic", "image/heic", "png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageExt(tt.name, tt.mime), "%q %q", tt.name, tt.mime)
	}
}
