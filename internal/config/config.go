/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the settings of the bcp47 command. Values come from
// DefaultConfig, then an optional TOML file, then BCP47_* environment
// variables, then command line flags bound by the caller.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/jplu/bcp47/langtag"
)

// EnvPrefix is the prefix of the environment variables read by Load, e.g.
// BCP47_LOG_LEVEL.
const EnvPrefix = "BCP47"

// Keys of the configuration values, shared by files, environment variables
// and flag bindings.
const (
	KeyRegistryPath   = "registry_path"
	KeyExtensionsPath = "extensions_path"
	KeyValidity       = "validity"
	KeyNormalization  = "normalization"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyWorkers        = "workers"
	KeyColor          = "color"
)

// Config holds the settings of the bcp47 command.
type Config struct {
	// RegistryPath is a record-jar, JSON or msgpack registry. Empty means the
	// embedded registry.
	RegistryPath string `mapstructure:"registry_path"`
	// ExtensionsPath is a record-jar extensions registry merged with a
	// record-jar RegistryPath.
	ExtensionsPath string `mapstructure:"extensions_path"`
	Validity       string `mapstructure:"validity"`      // well-formed, valid or strictly-valid
	Normalization  string `mapstructure:"normalization"` // none, canonical or preferred
	LogLevel       string `mapstructure:"log_level"`     // debug, info, warn, error
	LogFormat      string `mapstructure:"log_format"`    // text or json
	Workers        int    `mapstructure:"workers"`
	Color          string `mapstructure:"color"` // auto, on or off
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Validity:      "valid",
		Normalization: "canonical",
		LogLevel:      "warn",
		LogFormat:     "text",
		Workers:       4,
		Color:         "auto",
	}
}

// Load reads the configuration through v. file is an optional configuration
// file; its format follows its extension, TOML being the expected one.
func Load(v *viper.Viper, file string) (Config, error) {
	cfg := DefaultConfig()
	v.SetDefault(KeyRegistryPath, cfg.RegistryPath)
	v.SetDefault(KeyExtensionsPath, cfg.ExtensionsPath)
	v.SetDefault(KeyValidity, cfg.Validity)
	v.SetDefault(KeyNormalization, cfg.Normalization)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyLogFormat, cfg.LogFormat)
	v.SetDefault(KeyWorkers, cfg.Workers)
	v.SetDefault(KeyColor, cfg.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have a fixed set of spellings.
func (c Config) Validate() error {
	if _, err := langtag.ParseValidity(c.Validity); err != nil {
		return err
	}
	if _, err := langtag.ParseNormalization(c.Normalization); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// TagLevels returns the validity and normalization levels named by the
// configuration.
func (c Config) TagLevels() (langtag.TagValidity, langtag.TagNormalization, error) {
	validity, err := langtag.ParseValidity(c.Validity)
	if err != nil {
		return langtag.ValidityUnknown, langtag.NormalizationUnknown, err
	}
	normalization, err := langtag.ParseNormalization(c.Normalization)
	if err != nil {
		return langtag.ValidityUnknown, langtag.NormalizationUnknown, err
	}
	return validity, normalization, nil
}

// SlogLevel converts the configured log level to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
