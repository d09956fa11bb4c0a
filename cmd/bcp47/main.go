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

// Command bcp47 parses, validates, normalizes and matches BCP 47 language
// tags against the IANA Language Subtag Registry.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/jplu/bcp47/internal/config"
	"github.com/jplu/bcp47/internal/logger"
	"github.com/jplu/bcp47/langtag"
	"github.com/jplu/bcp47/registry"
)

// errFailed is returned when at least one input was rejected. The reason has
// already been printed next to the input.
var errFailed = errors.New("some tags were rejected")

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"registry":      config.KeyRegistryPath,
	"extensions":    config.KeyExtensionsPath,
	"validity":      config.KeyValidity,
	"normalization": config.KeyNormalization,
	"log-level":     config.KeyLogLevel,
	"log-format":    config.KeyLogFormat,
	"workers":       config.KeyWorkers,
	"color":         config.KeyColor,
}

// app is the state shared by the subcommands once the root command has read
// its configuration.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	reg    *registry.Registry
	styles styles
}

// tagOptions returns the creation options selected by the configuration.
func (a *app) tagOptions() (langtag.Options, error) {
	validity, normalization, err := a.cfg.TagLevels()
	if err != nil {
		return langtag.Options{}, err
	}
	return langtag.Options{Validity: validity, Normalization: normalization, Registry: a.reg}, nil
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}
	rootCmd := &cobra.Command{
		Use:           "bcp47",
		Short:         "BCP 47 language tag toolkit",
		Long:          `bcp47 parses, validates, normalizes and matches language tags (RFC 5646)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "configuration file (TOML)")
	flags.String("registry", defaults.RegistryPath, "registry file (record-jar, .json or .mp snapshot); empty uses the embedded extract, which lacks most subtags of the full IANA registry")
	flags.String("extensions", defaults.ExtensionsPath, "extensions registry merged into a record-jar registry")
	flags.String("validity", defaults.Validity, "validity level (well-formed|valid|strictly-valid)")
	flags.String("normalization", defaults.Normalization, "normalization level (none|canonical|preferred)")
	flags.String("log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	flags.String("log-format", defaults.LogFormat, "log format (text|json)")
	flags.Int("workers", defaults.Workers, "number of tags processed concurrently")
	flags.String("color", defaults.Color, "colorize output (auto|on|off)")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newNormalizeCmd(a))
	rootCmd.AddCommand(newCompareCmd(a))
	rootCmd.AddCommand(newFilterCmd(a))
	rootCmd.AddCommand(newRegistryCmd(a))
	return rootCmd
}

// setup reads the configuration, builds the logger and loads the registry.
func (a *app) setup(cmd *cobra.Command) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.SlogLevel())
	a.styles = newStyles(useColor(cfg.Color, cmd.OutOrStdout()))
	a.reg, err = loadRegistry(cfg, a.log)
	return err
}

func loadRegistry(cfg config.Config, log *slog.Logger) (*registry.Registry, error) {
	if cfg.RegistryPath == "" {
		reg, err := registry.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded registry: %w", err)
		}
		log.Debug("using embedded registry", "file_date", reg.FileDate, "records", len(reg.Records))
		return reg, nil
	}
	reg, err := registry.Load(cfg.RegistryPath, cfg.ExtensionsPath)
	if err != nil {
		return nil, err
	}
	log.Debug("registry loaded",
		"path", cfg.RegistryPath,
		"file_date", reg.FileDate,
		"records", len(reg.Records),
		"extensions", len(reg.Extensions))
	return reg, nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
