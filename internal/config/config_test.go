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
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins())
	assert.Equal(t, 30*time.Second, cfg.Server.BioTimeout)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignTTL)
	assert.Equal(t, "simple", cfg.Templates.Default)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 24, cfg.Auth.JWTExpirationHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Database.URL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 1000, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("DEFAULT_TEMPLATE", "modern")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_DEVELOPMENT", "true")
	t.Setenv("STORAGE_PRESIGN_TTL", "5m")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/portfolio", cfg.Database.URL)
	assert.Equal(t, "modern", cfg.Templates.Default)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins())
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 5*time.Minute, cfg.Storage.PresignTTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "10.0.0.1", cfg.RateLimit.Whitelist)
	assert.True(t, cfg.Server.SecureCookies)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	content := `
server:
  port: 7000
templates:
  default: frontend
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "frontend", cfg.Templates.Default)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8080},
			Storage: StorageConfig{Backend: StorageMemory, PresignTTL: time.Minute},
			Log:     LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "port"},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "s3" }, wantErr: "storage backend"},
		{name: "minio without credentials", mutate: func(c *Config) {
			c.Storage.Backend = StorageMinIO
			c.MinIO.Endpoint = "localhost:9000"
			c.MinIO.Bucket = "b"
		}, wantErr: "credentials"},
		{name: "minio complete", mutate: func(c *Config) {
			c.Storage.Backend = StorageMinIO
			c.MinIO = MinIOConfig{Endpoint: "localhost:9000", AccessKeyID: "k", SecretAccessKey: "s", Bucket: "b"}
		}},
		{name: "zero ttl", mutate: func(c *Config) { c.Storage.PresignTTL = 0 }, wantErr: "ttl"},
		{name: "rate limit without window", mutate: func(c *Config) {
			c.RateLimit = RateLimitConfig{Enabled: true, DefaultLimit: 10}
		}, wantErr: "rate limit"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
