package services

import (
	"context"

	"mdworkspace/internal/domain/models"
)

// PreferencesService defines the business logic for editor preferences
type PreferencesService interface {
	// GetPreferences returns stored preferences, or defaults if none exist yet
	GetPreferences(ctx context.Context) (*models.Preferences, error)

	// UpdatePreferences applies a partial update
	UpdatePreferences(ctx context.Context, req *models.UpdatePreferencesRequest) (*models.Preferences, error)

	// ListRecents returns recent files, most recent first
	ListRecents(ctx context.Context) ([]models.RecentFile, error)

	// AddRecent moves path to the front of the recent files list
	AddRecent(ctx context.Context, path string) ([]models.RecentFile, error)
}
