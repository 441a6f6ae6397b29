package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mdworkspace/internal/config"
	"mdworkspace/internal/domain"
	"mdworkspace/internal/domain/models"
	"mdworkspace/internal/domain/repositories"
	"mdworkspace/internal/domain/services"
)

// PreferencesService implements the PreferencesService interface
type PreferencesService struct {
	mu        sync.Mutex // serializes read-modify-write of the store
	prefsRepo repositories.PreferencesRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(
	prefsRepo repositories.PreferencesRepository,
	logger *slog.Logger,
) services.PreferencesService {
	return &PreferencesService{
		prefsRepo: prefsRepo,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *PreferencesService) getDefaultPreferences() *models.Preferences {
	return &models.Preferences{
		UI:        models.UIPreferences{Theme: models.ThemeLight},
		Recents:   []models.RecentFile{},
		UpdatedAt: s.now(),
	}
}

// load returns stored preferences with defaults filled in
func (s *PreferencesService) load(ctx context.Context) (*models.Preferences, error) {
	prefs, err := s.prefsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	if prefs == nil {
		s.logger.Debug("no preferences found, returning defaults")
		return s.getDefaultPreferences(), nil
	}
	if prefs.UI.Theme == "" {
		prefs.UI.Theme = models.ThemeLight
	}
	if prefs.Recents == nil {
		prefs.Recents = []models.RecentFile{}
	}
	return prefs, nil
}

// GetPreferences retrieves preferences, or defaults when none are stored
func (s *PreferencesService) GetPreferences(ctx context.Context) (*models.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// UpdatePreferences applies a partial update
func (s *PreferencesService) UpdatePreferences(ctx context.Context, req *models.UpdatePreferencesRequest) (*models.Preferences, error) {
	if err := validateUpdatePreferences(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		existing.UI.Theme = *req.Theme
	}
	existing.UpdatedAt = s.now()

	if err := s.prefsRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	s.logger.Info("preferences updated", "has_theme", req.Theme != nil)

	return existing, nil
}

// ListRecents returns recently opened files, most recent first
func (s *PreferencesService) ListRecents(ctx context.Context) ([]models.RecentFile, error) {
	prefs, err := s.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	return prefs.Recents, nil
}

// AddRecent records path as the most recently opened file
func (s *PreferencesService) AddRecent(ctx context.Context, path string) ([]models.RecentFile, error) {
	err := validation.Validate(path,
		validation.Required,
		validation.Length(1, config.MaxPathLength),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("path: %v", err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	existing.Recents = pushRecent(existing.Recents, path, config.MaxRecentFiles)
	existing.UpdatedAt = s.now()

	if err := s.prefsRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	return existing.Recents, nil
}

// pushRecent puts path first, drops any older entry for it and keeps at
// most limit entries
func pushRecent(recents []models.RecentFile, path string, limit int) []models.RecentFile {
	next := make([]models.RecentFile, 0, min(len(recents)+1, limit))
	next = append(next, models.RecentFile{Path: path, Name: filepath.Base(path)})
	for _, r := range recents {
		if len(next) == limit {
			break
		}
		if r.Path == path {
			continue
		}
		next = append(next, r)
	}
	return next
}

func validateUpdatePreferences(req *models.UpdatePreferencesRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Theme, validation.NilOrNotEmpty, validation.In(models.ThemeLight, models.ThemeDark)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}
