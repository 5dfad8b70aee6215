// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override file values.
const (
	EnvPort          = "RESUME_BUILDER_PORT"
	EnvChromePath    = "RESUME_BUILDER_CHROME_PATH"
	EnvExportTimeout = "RESUME_BUILDER_EXPORT_TIMEOUT"
	EnvMaxExports    = "RESUME_BUILDER_MAX_EXPORTS"
	EnvSessionTTL    = "RESUME_BUILDER_SESSION_TTL"
)

// Duration is a time.Duration that reads "30s" style strings from JSON.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a Go duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d.Duration = parsed
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(b))
	}
	d.Duration = time.Duration(n)
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or are provided via
// environment variables and CLI flags.
type Config struct {
	// Server
	Port       int      `json:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP listen port
	SessionTTL Duration `json:"session_ttl,omitempty"`                     // Idle time before a session is dropped

	// Export
	ChromePath    string   `json:"chrome_path,omitempty"`                  // Chrome binary; empty uses the PATH lookup
	ExportTimeout Duration `json:"export_timeout,omitempty"`               // Upper bound for one export
	MaxExports    int      `json:"max_exports,omitempty" validate:"gte=0"` // Concurrent rasterizations

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:          8080,
		SessionTTL:    Duration{2 * time.Hour},
		ExportTimeout: Duration{30 * time.Second},
		MaxExports:    2,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load builds the effective configuration: the optional file at path, then
// environment overrides, then defaults for anything still unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ApplyEnv overwrites fields with any RESUME_BUILDER_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv(EnvExportTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvExportTimeout, err)
		}
		c.ExportTimeout = Duration{d}
	}
	if v := os.Getenv(EnvMaxExports); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvMaxExports, err)
		}
		c.MaxExports = n
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvSessionTTL, err)
		}
		c.SessionTTL = Duration{d}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("'%s' failed '%s'", jsonName(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.ExportTimeout.Duration < 0 {
		return fmt.Errorf("config error: 'export_timeout' must be non-negative")
	}
	if c.SessionTTL.Duration < 0 {
		return fmt.Errorf("config error: 'session_ttl' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.ExportTimeout.Duration == 0 {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.MaxExports == 0 {
		result.MaxExports = defaults.MaxExports
	}
	if result.SessionTTL.Duration == 0 {
		result.SessionTTL = defaults.SessionTTL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func jsonName(field string) string {
	switch field {
	case "Port":
		return "port"
	case "MaxExports":
		return "max_exports"
	}
	return field
}
