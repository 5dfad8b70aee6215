package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !env("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   env("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: env("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		IdleTimeout:     env("RATE_LIMIT_IDLE_TIMEOUT", time.Hour, time.ParseDuration),
		Whitelist:       clientSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       clientSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Exports start a headless browser (strictest limits)
		{Path: "/export/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},

		// Editor writes (one per keystroke at most)
		{Path: "/editor", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/api/actions", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},

		// Reads use the default limit; /health and /metrics are never limited
	}
}

// env reads key with parse, falling back to def when the variable is unset
// or does not parse.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// clientSet turns "10.0.0.1, 10.0.0.2" into a lookup set of client IDs.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' }) {
		set[id] = true
	}
	return set
}
