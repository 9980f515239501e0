package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEngineYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "engine.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 8, cfg.Scheduler.WorkerCount)
	assert.Equal(t, 10000, cfg.Scheduler.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.LockTTL)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeEngineYAML(t, `
database:
  host: db.example.com
  port: 5433
scheduler:
  worker_count: 2
  max_iterations: 500
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 2, cfg.Scheduler.WorkerCount)
	assert.Equal(t, 500, cfg.Scheduler.MaxIterations)

	// Untouched sections keep their defaults.
	assert.Equal(t, "pythmata", cfg.Database.Database)
	assert.Equal(t, 1*time.Second, cfg.Scheduler.PollInterval)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "expanded-host")
	dir := writeEngineYAML(t, `
database:
  host: ${TEST_DB_HOST}
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "expanded-host", cfg.Database.Host)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeEngineYAML(t, "database: [not a map")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeEngineYAML(t, `
database:
  port: 99999
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
