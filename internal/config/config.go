// Package config loads service configuration from defaults, an optional
// config file and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageMinIO  = "minio"
)

// Config aggregates service settings
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Storage   StorageConfig   `mapstructure:"storage"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Log       LogConfig       `mapstructure:"log"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"`
	BioTimeout         time.Duration `mapstructure:"bio_timeout"`
	SecureCookies      bool          `mapstructure:"secure_cookies"`
}

// AllowedOrigins splits the comma separated CORS origin list
func (s ServerConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(s.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// DatabaseConfig contains the PostgreSQL connection URL. Empty disables persistence.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// GeminiConfig contains AI text generation settings. Empty key disables bio generation.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// StorageConfig selects where export archives are kept
type StorageConfig struct {
	Backend    string        `mapstructure:"backend"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage
type MinIOConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	PublicEndpoint   string `mapstructure:"public_endpoint"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AutoCreateBucket bool   `mapstructure:"auto_create_bucket"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// TemplatesConfig controls template selection
type TemplatesConfig struct {
	Default string `mapstructure:"default"`
}

// AuthConfig holds token and password hashing settings
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
	BcryptCost         int    `mapstructure:"bcrypt_cost"`
	PasswordPepper     string `mapstructure:"password_pepper"`
}

// RateLimitConfig controls per-client request limits
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       string        `mapstructure:"whitelist"`
	Blacklist       string        `mapstructure:"blacklist"`
}

// Load reads configuration. path names an explicit config file; when empty an
// optional portfolio.yaml in the working directory is used. Environment
// variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", "*")
	v.SetDefault("server.bio_timeout", 30*time.Second)
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("storage.backend", StorageMemory)
	v.SetDefault("storage.presign_ttl", 15*time.Minute)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.public_endpoint", "http://localhost:9000")
	v.SetDefault("minio.bucket", "portfolios")
	v.SetDefault("minio.auto_create_bucket", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("templates.default", "simple")
	v.SetDefault("auth.jwt_expiration_hours", 24)
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"server.port":                 "PORT",
		"server.cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
		"server.bio_timeout":          "BIO_TIMEOUT",
		"server.secure_cookies":       "SECURE_COOKIES",
		"database.url":                "DATABASE_URL",
		"gemini.api_key":              "GEMINI_API_KEY",
		"gemini.model":                "GEMINI_MODEL",
		"storage.backend":             "STORAGE_BACKEND",
		"storage.presign_ttl":         "STORAGE_PRESIGN_TTL",
		"minio.endpoint":              "MINIO_ENDPOINT",
		"minio.public_endpoint":       "MINIO_PUBLIC_ENDPOINT",
		"minio.access_key_id":         "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key":     "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":               "MINIO_USE_SSL",
		"minio.bucket":                "MINIO_BUCKET",
		"minio.region":                "MINIO_REGION",
		"minio.auto_create_bucket":    "MINIO_AUTO_CREATE_BUCKET",
		"log.level":                   "LOG_LEVEL",
		"log.development":             "LOG_DEVELOPMENT",
		"templates.default":           "DEFAULT_TEMPLATE",
		"auth.jwt_secret":             "JWT_SECRET",
		"auth.jwt_expiration_hours":   "JWT_EXPIRATION_HOURS",
		"auth.bcrypt_cost":            "BCRYPT_COST",
		"auth.password_pepper":        "PASSWORD_PEPPER",
		"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
		"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
		"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
		"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
		"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
		"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

// Validate checks that the configuration has usable values. Auth settings are
// checked when the JWT and password configs are built.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: server port out of range: %d", c.Server.Port)
	}
	if c.Server.BioTimeout < 0 {
		return errors.New("config error: bio timeout must be non-negative")
	}
	switch c.Storage.Backend {
	case StorageMemory:
	case StorageMinIO:
		if c.MinIO.Endpoint == "" {
			return errors.New("config error: minio endpoint is required")
		}
		if c.MinIO.AccessKeyID == "" || c.MinIO.SecretAccessKey == "" {
			return errors.New("config error: minio credentials are required")
		}
		if c.MinIO.Bucket == "" {
			return errors.New("config error: minio bucket is required")
		}
	default:
		return fmt.Errorf("config error: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.PresignTTL <= 0 {
		return errors.New("config error: presign ttl must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultLimit <= 0 || c.RateLimit.DefaultWindow <= 0) {
		return errors.New("config error: rate limit default limit and window must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}
	return nil
}
