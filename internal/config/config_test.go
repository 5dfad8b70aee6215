package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"export_timeout": "45s",
		"max_exports": 4,
		"session_ttl": "30m",
		"verbose": true
	}`

	cfg, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.ExportTimeout.Duration)
	assert.Equal(t, 4, cfg.MaxExports)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL.Duration)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"export_timeout": "soon"}`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{MaxExports: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_exports")

	cfg = &Config{ExportTimeout: Duration{-time.Second}}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "export_timeout")
}

func TestValidate_MissingChrome(t *testing.T) {
	cfg := &Config{ChromePath: "/nonexistent/chrome"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrome binary not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Port:    9000,
		Verbose: true,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, 9000, merged.Port)
	assert.True(t, merged.Verbose)

	// Default values should fill in empty fields
	assert.Equal(t, 30*time.Second, merged.ExportTimeout.Duration)
	assert.Equal(t, 2, merged.MaxExports)
	assert.Equal(t, 2*time.Hour, merged.SessionTTL.Duration)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 1234, merged.Port)
	assert.Zero(t, merged.MaxExports)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "max_exports": 4}`)
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvExportTimeout, "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 4, cfg.MaxExports)
	assert.Equal(t, 5*time.Second, cfg.ExportTimeout.Duration)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL.Duration)
}

func TestLoad_NoFile(t *testing.T) {
	for _, key := range []string{EnvPort, EnvChromePath, EnvExportTimeout, EnvMaxExports, EnvSessionTTL} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(EnvMaxExports, "many")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxExports)
}
