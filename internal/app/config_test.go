package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so tests see defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BIOSITE_CONFIG", "PORT", "BIOSITE_DB_FILE", "BIOSITE_STORE_DRIVER",
		"BIOSITE_STATIC_DIR", "ENV", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "db.json", cfg.DatabaseFile)
	assert.Equal(t, "flatfile", cfg.StoreDriver)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("BIOSITE_DB_FILE", "/var/lib/biosite/db.json")
	t.Setenv("BIOSITE_STORE_DRIVER", "bolt")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/var/lib/biosite/db.json", cfg.DatabaseFile)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "biosite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 4000
database:
  file: data/site.json
  driver: bolt
static_dir: assets
log:
  level: warn
  format: text
shutdown_grace_period: 5s
`), 0o600))
	t.Setenv("BIOSITE_CONFIG", path)

	cfg := LoadConfig()

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "data/site.json", cfg.DatabaseFile)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "assets", cfg.StaticDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "biosite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\n"), 0o600))
	t.Setenv("BIOSITE_CONFIG", path)
	t.Setenv("PORT", "9999")

	cfg := LoadConfig()

	assert.Equal(t, 9999, cfg.Port)
}

func TestLoadConfigMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIOSITE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.Port)
}
