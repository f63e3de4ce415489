package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "pet-shelter", cfg.AppName)
	assert.Equal(t, 4, cfg.NotifyWorkers)
	assert.Equal(t, 10*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, "none", cfg.TracingExporter)
	assert.False(t, cfg.DBMigrate)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shelter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
log_format: json
notify_workers: 2
telegram_timeout: 3s
`), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("DB_MIGRATE", "true")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2, cfg.NotifyWorkers)
	assert.Equal(t, 3*time.Second, cfg.TelegramTimeout)
	assert.True(t, cfg.DBMigrate)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("NOTIFY_WORKERS", "0")
	_, err := LoadFile("")
	assert.Error(t, err)

	t.Setenv("NOTIFY_WORKERS", "1")
	t.Setenv("TRACING_EXPORTER", "zipkin")
	_, err = LoadFile("")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
