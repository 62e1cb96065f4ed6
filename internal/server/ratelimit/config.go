package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/portfolio-builder/internal/config"
)

// EndpointConfig is the limit for one route. Path segments written as "*"
// match any single segment; a trailing "/" matches any longer path.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromConfig builds the limiter configuration from service settings
func FromConfig(c config.RateLimitConfig) *Config {
	if !c.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    c.DefaultLimit,
		DefaultWindow:   c.DefaultWindow,
		CleanupInterval: c.CleanupInterval,
		Whitelist:       parseIPList(c.Whitelist),
		Blacklist:       parseIPList(c.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Packaging and AI calls
		{Path: "/sessions/*/exports", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/sessions/*/export", Method: "GET", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/sessions/*/bio", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},

		// Account endpoints
		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Session creation
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
