package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "ENVIRONMENT", "DEBUG", "LOG_MAX_FILES", "RENDER_CACHE_SIZE"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATA_DIR", "/tmp/mdws-data")

	cfg := Load()

	assert.Equal(t, "8787", cfg.Port)
	assert.Equal(t, "127.0.0.1:8787", cfg.Addr())
	assert.Equal(t, "dev", cfg.Environment)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, 256, cfg.RenderCacheSize)
	assert.Equal(t, filepath.Join("/tmp/mdws-data", "preferences.yaml"), cfg.PreferencesPath())
}

func TestLoad_ProdDisablesDebug(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("DEBUG", "")
	t.Setenv("RENDER_CACHE_SIZE", "not-a-number")

	cfg := Load()

	assert.False(t, cfg.Debug)
	assert.Equal(t, 256, cfg.RenderCacheSize)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " http://localhost:1420 ,tauri://localhost,, "}

	assert.Equal(t, []string{"http://localhost:1420", "tauri://localhost"}, cfg.AllowedOrigins())
	assert.Empty(t, (&Config{}).AllowedOrigins())
}

func TestSetupLogFile_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	old := []string{
		"mdworkspace-2020-01-01T00-00-00.log",
		"mdworkspace-2020-01-02T00-00-00.log",
		"mdworkspace-2020-01-03T00-00-00.log",
	}
	for _, name := range old {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	f, err := SetupLogFile(dir, 2)
	require.NoError(t, err)
	defer f.Close()

	files, err := filepath.Glob(filepath.Join(dir, "mdworkspace-*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NotContains(t, files, filepath.Join(dir, old[0]))
	assert.Contains(t, files, f.Name())
}
