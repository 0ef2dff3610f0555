// Package config handles the global when configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/aidanlsb/when/internal/dates"
)

// Config represents the global configuration file.
type Config struct {
	// Resolve controls how phrases are matched and which timezone "today" uses.
	Resolve ResolveConfig `toml:"resolve"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// Log controls diagnostic output on stderr.
	Log LogConfig `toml:"log"`
}

// ResolveConfig holds phrase resolution preferences.
type ResolveConfig struct {
	// Match is "substring" (default) or "word".
	Match string `toml:"match"`

	// Timezone is an IANA location name used to compute the reference date.
	// Empty or "Local" uses the system timezone.
	Timezone string `toml:"timezone"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255"), hex colors ("#RRGGBB") or "none".
	Accent string `toml:"accent"`
}

// LogConfig represents logging preferences.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to warn.
	Level string `toml:"level"`
}

// MatchMode returns the configured keyword matching mode.
func (c *Config) MatchMode() (dates.MatchMode, error) {
	return dates.ParseMatchMode(c.Resolve.Match)
}

// Location returns the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Resolve.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// Validate checks values that are otherwise only parsed on use.
func (c *Config) Validate() error {
	if _, err := c.MatchMode(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if level := strings.TrimSpace(c.Log.Level); level != "" {
		var parsed zapcore.Level
		if err := parsed.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", c.Log.Level)
		}
	}
	return nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/when/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "when", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/when/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "when", "config.toml"), nil
}

const defaultConfig = `# when configuration

[resolve]
# How keywords are found in a phrase:
#   substring - anywhere in the text ("wednesdays" matches "wednesday")
#   word      - whole words only
# match = "substring"
#
# IANA timezone used for "today" (defaults to the system timezone).
# timezone = "Europe/Berlin"

# [ui]
# Accent color for headers in terminal output.
# Supports ANSI color codes (0-255), hex (#RRGGBB) or "none".
# accent = "39"

# [log]
# level = "warn"
`

// CreateDefault writes a commented default config at path if it doesn't exist.
// It returns true when a new file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
