// Package config handles the XDG configuration directory and the optional
// TOML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"dtask/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "dtask"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"
)

// Color modes accepted by the "color" key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds configuration values. Flags override file values; the file
// is optional. Task data itself is never read from or written to disk.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// Debug enables debug logging on stderr.
	Debug bool `toml:"debug"`

	// TUI starts the full-screen interface instead of the menu loop.
	TUI bool `toml:"tui"`

	// Color is one of "auto", "always", "never".
	Color string `toml:"color"`

	// DefaultPriority is used by the TUI when the priority prompt is left
	// empty. Must be 1, 2 or 3.
	DefaultPriority int `toml:"default_priority"`
}

// New creates a Config with defaults, then applies the config file in the
// default or specified directory if one exists. A missing file is not an
// error; an unreadable or invalid one is.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:             dir,
		Color:           ColorAuto,
		DefaultPriority: int(task.PriorityMedium),
	}

	path := cfg.Path()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the config file path.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, FileName)
}

// Colorized decides whether styled output is produced.
// "never" and NO_COLOR always win; "always" forces color; "auto" requires
// a TTY, which the caller determines for its writer.
func (c *Config) Colorized(isTTY bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %q", c.Color)
	}
	if !task.Priority(c.DefaultPriority).Valid() {
		return fmt.Errorf("invalid default_priority: %d", c.DefaultPriority)
	}
	return nil
}
