package repositories

import (
	"context"

	"mdworkspace/internal/domain/models"
)

// PreferencesRepository defines the interface for preferences storage
type PreferencesRepository interface {
	// Get retrieves stored preferences.
	// Returns nil if nothing has been stored yet.
	Get(ctx context.Context) (*models.Preferences, error)

	// Save replaces stored preferences
	Save(ctx context.Context, prefs *models.Preferences) error
}
