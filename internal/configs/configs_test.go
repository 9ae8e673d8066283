package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"APP_HOST", "APP_PORT", "DATABASE_DRIVER", "DATABASE_DSN",
	"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BACKEND", "REDIS_HOST", "REDIS_PORT",
	"REDIS_KEY_PREFIX", "SHUTDOWN_TIMEOUT_SECONDS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "task-list.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `
app_url = "0.0.0.0:9000"
database_driver = "postgres"
database_dsn = "postgres://tasks@localhost/tasks"
rate_limit_per_minute = 30
log_format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.AppURL)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 20, cfg.ShutdownTimeoutSeconds, "unset keys keep defaults")

	t.Setenv("APP_PORT", "9100")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "45")
	t.Setenv("DATABASE_DRIVER", "SQLITE")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9100", cfg.AppURL)
	assert.Equal(t, 45, cfg.RateLimit)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
}

func TestLoad_RedisAddressFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, RateLimitRedis, cfg.RateLimitBackend)
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "mysql"}},
		{"non-numeric limit", map[string]string{"RATE_LIMIT_PER_MINUTE": "lots"}},
		{"zero limit", map[string]string{"RATE_LIMIT_PER_MINUTE": "0"}},
		{"unknown limiter", map[string]string{"RATE_LIMIT_BACKEND": "memcached"}},
		{"negative shutdown", map[string]string{"SHUTDOWN_TIMEOUT_SECONDS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Defaults()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"

	logger := newLogger(&buf, cfg)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown", "task_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"task_id":7`)
}
