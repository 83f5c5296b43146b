package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/vitals-stats/temperature"
)

// Config holds all tool settings, populated from an optional YAML file and
// environment variables. Environment variables take precedence over the file;
// command-line flags (applied by the caller) take precedence over both.
type Config struct {
	InputUnit              temperature.Unit
	ForceConvertIfMismatch bool
	ConvertMixedValues     bool

	LogLevel  string
	LogFormat string
}

// fileConfig mirrors the YAML layout. Bool fields are pointers so an absent
// key can be told apart from an explicit false.
type fileConfig struct {
	InputUnit              string `yaml:"input_unit"`
	ForceConvertIfMismatch *bool  `yaml:"force_convert_if_mismatch"`
	ConvertMixedValues     *bool  `yaml:"convert_mixed_values"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty) and then from environment variables, applying defaults where unset.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel:  "info",
		LogFormat: "text",
	}

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.InputUnit != "" {
		unit, err := temperature.ParseUnit(fc.InputUnit)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.InputUnit = unit
	}
	if fc.ForceConvertIfMismatch != nil {
		cfg.ForceConvertIfMismatch = *fc.ForceConvertIfMismatch
	}
	if fc.ConvertMixedValues != nil {
		cfg.ConvertMixedValues = *fc.ConvertMixedValues
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TEMPSTATS_UNIT"); v != "" {
		unit, err := temperature.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("TEMPSTATS_UNIT: %w", err)
		}
		cfg.InputUnit = unit
	}
	if v := os.Getenv("TEMPSTATS_FORCE_CONVERT"); v != "" {
		cfg.ForceConvertIfMismatch = v == "true"
	}
	if v := os.Getenv("TEMPSTATS_CONVERT_MIXED"); v != "" {
		cfg.ConvertMixedValues = v == "true"
	}

	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOrDefault("LOG_FORMAT", cfg.LogFormat)

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Options converts the configured unit-resolution settings to core options.
func (c *Config) Options() temperature.Options {
	return temperature.Options{
		InputUnit:              c.InputUnit,
		ForceConvertIfMismatch: c.ForceConvertIfMismatch,
		ConvertMixedValues:     c.ConvertMixedValues,
	}
}
