package yamlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"mdworkspace/internal/domain/models"
	"mdworkspace/internal/domain/repositories"
)

// PreferencesRepository stores preferences in a single YAML file
type PreferencesRepository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewPreferencesRepository creates a repository backed by the file at path.
// The file and its directory are created on first save.
func NewPreferencesRepository(path string, logger *slog.Logger) repositories.PreferencesRepository {
	return &PreferencesRepository{
		path:   path,
		logger: logger,
	}
}

// Get reads the preferences file
func (r *PreferencesRepository) Get(ctx context.Context) (*models.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Nothing saved yet - return nil (not an error)
			return nil, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var prefs models.Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences %s: %w", r.path, err)
	}

	return &prefs, nil
}

// Save writes to a temp file in the same directory and renames it over the
// old file, so readers never see a partial write
func (r *PreferencesRepository) Save(ctx context.Context, prefs *models.Preferences) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp preferences: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}

	r.logger.Debug("preferences saved", "path", r.path, "recents", len(prefs.Recents))
	return nil
}
