// Package config resolves runtime settings from defaults, an optional YAML
// file and DOMINO_* environment variables. Command-line flags are applied on
// top by the caller.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/domino/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "DOMINO_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings shared by all commands.
type Config struct {
	LogLevel  string  `mapstructure:"log_level" env:"LOG_LEVEL"`
	LogFormat string  `mapstructure:"log_format" env:"LOG_FORMAT"`
	Addr      string  `mapstructure:"addr" env:"ADDR"`
	Seed      *uint64 `mapstructure:"seed" env:"SEED"`
	Color     string  `mapstructure:"color" env:"COLOR"`
	Metrics   bool    `mapstructure:"metrics" env:"METRICS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: string(logging.FormatText),
		Addr:      "127.0.0.1:8080",
		Color:     ColorAuto,
		Metrics:   true,
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment
// over the defaults, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}

// SetSeed records an explicit seed.
func (c *Config) SetSeed(seed uint64) {
	c.Seed = &seed
}
