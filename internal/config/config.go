// Package config loads FocusFlow settings from defaults, YAML files,
// FOCUSFLOW_* environment variables and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// Config is the resolved application configuration.
type Config struct {
	DBPath          string            `yaml:"db_path" mapstructure:"db_path"`
	LogDir          string            `yaml:"log_dir" mapstructure:"log_dir"`
	LogLevel        string            `yaml:"log_level" mapstructure:"log_level"`
	TickInterval    time.Duration     `yaml:"tick_interval" mapstructure:"tick_interval"`
	DefaultFocus    int               `yaml:"default_focus" mapstructure:"default_focus"`
	DefaultCategory string            `yaml:"default_category" mapstructure:"default_category"`
	FeedPageSize    int               `yaml:"feed_page_size" mapstructure:"feed_page_size"`
	API             APIConfig         `yaml:"api" mapstructure:"api"`
	LogRotation     LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// APIConfig holds settings for `focusflow serve`.
type APIConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogRotationConfig holds settings for the TUI log file.
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns the built-in configuration. Paths live under
// ~/.focusflow, or the working directory when no home is available.
func Default() *Config {
	base := ".focusflow"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".focusflow")
	}
	return &Config{
		DBPath:          filepath.Join(base, "focusflow.db"),
		LogDir:          filepath.Join(base, "logs"),
		LogLevel:        "info",
		TickInterval:    time.Second,
		DefaultFocus:    domain.DefaultFocusLevel,
		DefaultCategory: domain.StartCategories[0],
		FeedPageSize:    20,
		API: APIConfig{
			Addr:            "127.0.0.1:7420",
			ShutdownTimeout: 5 * time.Second,
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}

// Validate rejects settings the rest of the app cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.DefaultFocus < domain.MinFocusLevel || c.DefaultFocus > domain.MaxFocusLevel {
		return fmt.Errorf("default_focus must be between %d and %d, got %d",
			domain.MinFocusLevel, domain.MaxFocusLevel, c.DefaultFocus)
	}
	if c.FeedPageSize < 1 {
		return fmt.Errorf("feed_page_size must be at least 1, got %d", c.FeedPageSize)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
