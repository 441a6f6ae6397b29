package yamlstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdworkspace/internal/domain/models"
)

func newRepo(t *testing.T) (*PreferencesRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	repo := NewPreferencesRepository(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return repo.(*PreferencesRepository), path
}

func TestGet_MissingFileReturnsNil(t *testing.T) {
	repo, _ := newRepo(t)

	prefs, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestSaveThenGet(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()
	saved := &models.Preferences{
		UI: models.UIPreferences{Theme: models.ThemeDark},
		Recents: []models.RecentFile{
			{Path: "/ws/b.md", Name: "b.md"},
			{Path: "/ws/a.md", Name: "a.md"},
		},
		UpdatedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.UI, got.UI)
	assert.Equal(t, saved.Recents, got.Recents)
	assert.True(t, saved.UpdatedAt.Equal(got.UpdatedAt))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "theme: dark")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestGet_CorruptFile(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("ui: [not a map"), 0644))

	_, err := repo.Get(context.Background())
	assert.Error(t, err)
}
