package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-server/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.NotNil(t, cfg)

	// Server defaults
	assert.Equal(t, config.DefaultHost, cfg.Server.Host)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Equal(t, config.DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)

	// MongoDB defaults
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "artify", cfg.MongoDB.Database)
	assert.Equal(t, config.DefaultMongoDBTimeout, cfg.MongoDB.Timeout)
	assert.Equal(t, uint64(config.DefaultMongoDBMaxPoolSize), cfg.MongoDB.MaxPoolSize)

	// Auth defaults
	assert.Equal(t, "dev-secret-change-in-production", cfg.Auth.JWTSecret)
	assert.Equal(t, config.DefaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, config.DefaultBcryptCost, cfg.Auth.BcryptCost)

	// Log defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{name: "default address", host: "0.0.0.0", port: 8080, expected: "0.0.0.0:8080"},
		{name: "localhost", host: "localhost", port: 3000, expected: "localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.expected, cfg.Address())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid default config", func(t *testing.T) {
		cfg := config.DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Server.Port = 0
		require.ErrorIs(t, cfg.Validate(), config.ErrConfigInvalid)
	})

	t.Run("missing mongodb uri", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.MongoDB.URI = ""
		require.ErrorIs(t, cfg.Validate(), config.ErrConfigInvalid)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Auth.JWTSecret = ""
		require.ErrorIs(t, cfg.Validate(), config.ErrConfigInvalid)
	})

	t.Run("non-positive token ttl", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Auth.TokenTTL = 0
		require.ErrorIs(t, cfg.Validate(), config.ErrConfigInvalid)
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Level = "verbose"
		require.ErrorIs(t, cfg.Validate(), config.ErrConfigInvalid)
	})
}

func TestLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  host: 127.0.0.1
  port: 9090
mongodb:
  uri: mongodb://db:27017
  database: artify_test
auth:
  jwt_secret: test-secret
  token_ttl: 168h
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "artify_test", cfg.MongoDB.Database)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestLoader_LoadMissingExplicitPath(t *testing.T) {
	_, err := config.LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "4000")
	t.Setenv("MONGODB_DATABASE", "artify_env")
	t.Setenv("AUTH_TOKEN_TTL", "24h")

	loader := config.NewLoader().WithConfigPaths(nil)
	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "artify_env", cfg.MongoDB.Database)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoader_InvalidEnvValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	loader := config.NewLoader().WithConfigPaths(nil)
	_, err := loader.Load("")
	require.Error(t, err)
}
