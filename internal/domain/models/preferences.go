package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// RecentFile is an entry in the recently opened files list
type RecentFile struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}

// UIPreferences represents the ui namespace in preferences
type UIPreferences struct {
	Theme string `json:"theme" yaml:"theme"` // "light", "dark"
}

// Preferences is everything the editor persists between sessions
type Preferences struct {
	UI        UIPreferences `json:"ui" yaml:"ui"`
	Recents   []RecentFile  `json:"recents" yaml:"recents"`
	UpdatedAt time.Time     `json:"updated_at" yaml:"updated_at"`
}

// UpdatePreferencesRequest represents a partial preferences update.
// Only provided fields are updated.
type UpdatePreferencesRequest struct {
	Theme *string `json:"theme"`
}
