package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	Host        string
	Environment string
	CORSOrigins string
	// DataDir holds preferences.yaml (recent files, theme)
	DataDir string
	// Logging
	LogDir      string
	LogMaxFiles int
	// RenderCacheSize is the number of rendered previews kept in memory
	RenderCacheSize int
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:            getEnv("PORT", "8787"),
		Host:            getEnv("HOST", "127.0.0.1"),
		Environment:     env,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:1420,tauri://localhost"),
		DataDir:         getEnv("DATA_DIR", defaultDataDir()),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     getEnvInt("LOG_MAX_FILES", 10),
		RenderCacheSize: getEnvInt("RENDER_CACHE_SIZE", 256),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty origins
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// PreferencesPath returns the location of the preferences file
func (c *Config) PreferencesPath() string {
	return filepath.Join(c.DataDir, "preferences.yaml")
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// defaultDataDir resolves the per-user config directory, falling back to
// a dot directory under the working directory when none is available.
func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".mdworkspace"
	}
	return filepath.Join(dir, "mdworkspace")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
