package config

const (
	// MaxRequestBodyBytes caps JSON request bodies. Large enough for a
	// pasted image sent as base64 (roughly 24MB of binary).
	MaxRequestBodyBytes = 32 << 20

	// MaxRecentFiles is the number of entries kept in the recent files list.
	MaxRecentFiles = 20

	// MaxPathLength is the longest filesystem path accepted by the API.
	// Most platforms cap paths at 4096 bytes (PATH_MAX on Linux).
	MaxPathLength = 4096
)
