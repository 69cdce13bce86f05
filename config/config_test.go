package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tutorhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, BackendJSONFile, cfg.Storage.Backend)
	assert.Equal(t, "data/addressbook.json", cfg.Storage.DataFile)
	assert.Empty(t, cfg.Storage.Mirrors)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	path := writeYAML(t, `
storage:
  data_file: /tmp/book.json
  mirrors: [redis]
  mirror_failure_threshold: 5
redis:
  namespace: lessons
observability:
  log_level: debug
timeouts:
  mirror_timeout: 3s
  mirror_cooldown: 2m
  redis_ttl: 1h
`)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/book.json", cfg.Storage.DataFile)
	assert.Equal(t, []string{"redis"}, cfg.Storage.Mirrors)
	assert.Equal(t, "lessons", cfg.Redis.Namespace)
	assert.Equal(t, 3*time.Second, cfg.Storage.MirrorTimeout)
	assert.Equal(t, 5, cfg.Storage.MirrorFailureThreshold)
	assert.Equal(t, 2*time.Minute, cfg.Storage.MirrorCooldown)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "warn", cfg.Observability.LogLevel, "environment wins over the file")
	// Untouched keys keep their defaults.
	assert.Equal(t, "preferences.json", cfg.Storage.PrefsFile)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.True(t, cfg.Uses(BackendRedis))
	assert.False(t, cfg.Uses(BackendPostgres))
}

func TestLoadFile_UnknownKeyRejected(t *testing.T) {
	path := writeYAML(t, "storage:\n  colour: blue\n")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_BadDuration(t *testing.T) {
	path := writeYAML(t, "timeouts:\n  mirror_timeout: soon\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeouts.mirror_timeout")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Mirrors = []string{"redis", "redis", "s3"}
	cfg.Observability.LogFormat = "xml"
	cfg.Storage.EventWorkers = 0
	cfg.Storage.MirrorFailureThreshold = 0

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "TUTORHUB_BACKEND")
	assert.Contains(t, msg, `mirror "redis" is listed twice`)
	assert.Contains(t, msg, `mirror "s3" is not supported`)
	assert.Contains(t, msg, "LOG_FORMAT")
	assert.Contains(t, msg, "TUTORHUB_EVENT_WORKERS")
	assert.Contains(t, msg, "TUTORHUB_MIRROR_FAILURE_THRESHOLD")
}

func TestValidate_MirrorSameAsBackend(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = BackendPostgres
	cfg.Storage.Mirrors = []string{BackendPostgres}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already the primary backend")
}

func TestValidate_PostgresNeedsConnection(t *testing.T) {
	cfg := Default()
	cfg.Storage.Mirrors = []string{BackendPostgres}
	cfg.Database.Host = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL or DB_HOST")

	cfg.Database.URL = "postgres://localhost/tutorhub"
	assert.NoError(t, cfg.Validate())
}

func TestGetEnvStringSlice(t *testing.T) {
	t.Setenv("TUTORHUB_MIRRORS", " postgres, ,redis ")
	assert.Equal(t, []string{"postgres", "redis"}, getEnvStringSlice("TUTORHUB_MIRRORS", nil))

	t.Setenv("TUTORHUB_MIRRORS", "")
	assert.Empty(t, getEnvStringSlice("TUTORHUB_MIRRORS", []string{"redis"}), "set but empty clears the list")
}
