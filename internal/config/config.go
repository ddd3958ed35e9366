// Package config provides configuration loading for familytree.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	// Payload is a YAML or TOML tree file. Empty means the built-in tree.
	Payload string `yaml:"payload"`

	// DBPath is the SQLite database used by import, list and --root.
	DBPath string `yaml:"db_path"`

	// RootID selects a stored tree. When set, the tree is loaded from
	// DBPath instead of Payload.
	RootID string `yaml:"root_id"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile receives logs while the TUI owns the terminal.
	// Empty discards them.
	LogFile string `yaml:"log_file"`

	// CompactWidth is the terminal width below which spouse cards
	// stack vertically.
	CompactWidth int `yaml:"compact_width"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		DBPath:       filepath.Join(homeDir, ".familytree", "familytree.db"),
		LogLevel:     "info",
		CompactWidth: 60,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RootID != "" && c.DBPath == "" {
		return fmt.Errorf("root_id %q requires db_path", c.RootID)
	}
	if c.CompactWidth < 0 {
		return fmt.Errorf("compact_width must not be negative")
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
