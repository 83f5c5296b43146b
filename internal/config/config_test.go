package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/vitals-stats/temperature"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, temperature.UnitUnspecified, cfg.InputUnit)
	assert.False(t, cfg.ForceConvertIfMismatch)
	assert.False(t, cfg.ConvertMixedValues)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("TEMPSTATS_UNIT", "C")
	t.Setenv("TEMPSTATS_FORCE_CONVERT", "true")
	t.Setenv("TEMPSTATS_CONVERT_MIXED", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, temperature.UnitCelsius, cfg.InputUnit)
	assert.True(t, cfg.ForceConvertIfMismatch)
	assert.True(t, cfg.ConvertMixedValues)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidUnitEnv(t *testing.T) {
	t.Setenv("TEMPSTATS_UNIT", "kelvin")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPSTATS_UNIT")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
input_unit: F
force_convert_if_mismatch: true
log:
  level: warn
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, temperature.UnitFahrenheit, cfg.InputUnit)
	assert.True(t, cfg.ForceConvertIfMismatch)
	assert.False(t, cfg.ConvertMixedValues)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "input_unit: F\n")
	t.Setenv("TEMPSTATS_UNIT", "C")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, temperature.UnitCelsius, cfg.InputUnit)
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "input_unit: [oops\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid unit in file", func(t *testing.T) {
		path := writeConfigFile(t, "input_unit: kelvin\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestOptions(t *testing.T) {
	cfg := &Config{
		InputUnit:              temperature.UnitFahrenheit,
		ForceConvertIfMismatch: true,
		ConvertMixedValues:     true,
	}

	opts := cfg.Options()
	assert.Equal(t, temperature.UnitFahrenheit, opts.InputUnit)
	assert.True(t, opts.ForceConvertIfMismatch)
	assert.True(t, opts.ConvertMixedValues)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
