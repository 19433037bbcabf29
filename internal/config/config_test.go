package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
database:
  host: db.internal
  dbname: learnhub_test
jwt:
  secret: file-secret
  access_token_expiration: 30m
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "learnhub_test", cfg.Database.DBName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Values the file does not set keep their defaults.
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
database:
  host: file-host
`)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: s
  access_token_expiration: soon
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}
