package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_PORT", "APP_BUILD_MODE", "APP_DB", "APP_ADMIN_TOKEN", "APP_LOG_LEVEL",
		"APP_LOG_FILE", "APP_RATE_LIMIT", "APP_RATE_WINDOW", "APP_PUBLISHED_ONLY", "APP_MIGRATE",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.Port)
	assert.Equal(t, MemoryDB, c.DatabaseURL)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.Equal(t, 20, c.RateLimit)
	assert.Equal(t, 60*time.Second, c.RateWindow)
	assert.True(t, c.PublishedOnly)
	assert.True(t, c.Migrate)
	assert.False(t, c.Dev())
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Port)
	assert.Empty(t, cfg.AdminToken)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_BUILD_MODE", "dev")
	t.Setenv("APP_DB", "postgres://localhost/awards")
	t.Setenv("APP_ADMIN_TOKEN", "tok")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FILE", "")
	t.Setenv("APP_RATE_LIMIT", "0")
	t.Setenv("APP_RATE_WINDOW", "5s")
	t.Setenv("APP_PUBLISHED_ONLY", "false")
	t.Setenv("APP_MIGRATE", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.True(t, cfg.Dev())
	assert.Equal(t, "postgres://localhost/awards", cfg.DatabaseURL)
	assert.Equal(t, "tok", cfg.AdminToken)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 5*time.Second, cfg.RateWindow)
	assert.False(t, cfg.PublishedOnly)
	assert.False(t, cfg.Migrate)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=:9000\nAPP_ADMIN_TOKEN=fromfile\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_PORT")
		_ = os.Unsetenv("APP_ADMIN_TOKEN")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "fromfile", cfg.AdminToken)
}

func TestLoad_InvalidValues(t *testing.T) {
	for k, v := range map[string]string{
		"APP_LOG_LEVEL":      "loud",
		"APP_RATE_LIMIT":     "many",
		"APP_RATE_WINDOW":    "soon",
		"APP_PUBLISHED_ONLY": "perhaps",
	} {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), k)
		})
	}
}
