// Package config loads RepoHours settings from defaults, a config file,
// REPOHOURS_* environment variables and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bryan-cox/repohours/internal/ledger"
	"github.com/spf13/viper"
)

// Config represents the complete RepoHours configuration.
type Config struct {
	// Author prefixes generated file names, e.g. "flavio-hours-...".
	Author    string        `mapstructure:"author"`
	OutputDir string        `mapstructure:"output_dir"`
	Report    ReportConfig  `mapstructure:"report"`
	Logging   LoggingConfig `mapstructure:"log"`
}

// ReportConfig controls how time is billed.
type ReportConfig struct {
	// GranularityMinutes is the step spans are rounded up to.
	GranularityMinutes int `mapstructure:"granularity_minutes"`
	// SingleEntryMinutes is billed for a repository seen only once in a day.
	SingleEntryMinutes int `mapstructure:"single_entry_minutes"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Format is "json" or "text".
	Format string `mapstructure:"format"`
	// Level is "debug", "info", "warn" or "error".
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Author:    "",
		OutputDir: ".",
		Report: ReportConfig{
			GranularityMinutes: 15,
			SingleEntryMinutes: 60,
		},
		Logging: LoggingConfig{
			Format: "json",
			Level:  "info",
		},
	}
}

// SetDefaults registers the defaults with viper.
func SetDefaults() {
	defaults := Default()
	viper.SetDefault("author", defaults.Author)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("report.granularity_minutes", defaults.Report.GranularityMinutes)
	viper.SetDefault("report.single_entry_minutes", defaults.Report.SingleEntryMinutes)
	viper.SetDefault("log.format", defaults.Logging.Format)
	viper.SetDefault("log.level", defaults.Logging.Level)
}

// Load reads the configuration currently held by viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode configuration: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Policy returns the billing policy described by the configuration.
func (c *Config) Policy() ledger.Policy {
	return ledger.Policy{
		Granularity: time.Duration(c.Report.GranularityMinutes) * time.Minute,
		SingleEntry: time.Duration(c.Report.SingleEntryMinutes) * time.Minute,
	}
}

// Logger builds the slog logger described by the configuration.
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Logging.Level)}
	if strings.EqualFold(c.Logging.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "repohours")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repohours"
	}
	return filepath.Join(home, ".config", "repohours")
}
