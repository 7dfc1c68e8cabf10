package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/storage"
)

var configVars = []string{
	"APP_ENV", "ENV", "HTTP_ADDR", "STORAGE_DRIVER", "DATABASE_URL", "REDIS_URL",
	"STORAGE_KEY_PREFIX", "S3_BUCKET", "AWS_REGION", "STORAGE_DIR", "JWT_SECRET",
	"JWT_TTL", "SEED_REVIEWS_PATH", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, storage.DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, "travelbook:", cfg.Storage.KeyPrefix)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":          {"JWT_TTL": "soon"},
		"negative ttl":     {"JWT_TTL": "-1h"},
		"unknown driver":   {"STORAGE_DRIVER": "floppy"},
		"redis no url":     {"STORAGE_DRIVER": "redis"},
		"s3 no bucket":     {"STORAGE_DRIVER": "s3"},
		"bad level":        {"LOG_LEVEL": "loud"},
		"bad format":       {"LOG_FORMAT": "xml"},
		"prod default jwt": {"APP_ENV": "production"},
		"prod memory":      {"APP_ENV": "prod", "JWT_SECRET": "s3cret", "STORAGE_DRIVER": "memory"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_Production(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Release")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "sql")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "travelbook.db", cfg.Storage.DatabaseURL)
}

func TestLoadDotEnv(t *testing.T) {
	const probe = "TRAVELBOOK_DOTENV_PROBE"
	t.Cleanup(func() { _ = os.Unsetenv(probe) })
	t.Setenv("HTTP_ADDR", ":7000")

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte(probe+"=loaded\nHTTP_ADDR=:9999\n"), 0o600))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv(probe))
	assert.Equal(t, ":7000", os.Getenv("HTTP_ADDR"), "process env wins over the file")
}
