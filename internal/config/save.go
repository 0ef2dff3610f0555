package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/when/internal/atomicfile"
)

type persistedConfig struct {
	Resolve *persistedResolve `toml:"resolve,omitempty"`
	UI      *persistedUI      `toml:"ui,omitempty"`
	Log     *persistedLog     `toml:"log,omitempty"`
}

type persistedResolve struct {
	Match    *string `toml:"match,omitempty"`
	Timezone *string `toml:"timezone,omitempty"`
}

type persistedUI struct {
	Accent *string `toml:"accent,omitempty"`
}

type persistedLog struct {
	Level *string `toml:"level,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to path atomically. Empty values are omitted.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	var out persistedConfig
	match, tz := nonEmptyPtr(cfg.Resolve.Match), nonEmptyPtr(cfg.Resolve.Timezone)
	if match != nil || tz != nil {
		out.Resolve = &persistedResolve{Match: match, Timezone: tz}
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUI{Accent: accent}
	}
	if level := nonEmptyPtr(cfg.Log.Level); level != nil {
		out.Log = &persistedLog{Level: level}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// settableKeys maps dotted keys accepted by Set to their fields.
var settableKeys = map[string]func(*Config) *string{
	"resolve.match":    func(c *Config) *string { return &c.Resolve.Match },
	"resolve.timezone": func(c *Config) *string { return &c.Resolve.Timezone },
	"ui.accent":        func(c *Config) *string { return &c.UI.Accent },
	"log.level":        func(c *Config) *string { return &c.Log.Level },
}

// Keys lists the dotted keys accepted by Set.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a dotted key such as "resolve.match" and validates the result.
// On error the config is left unchanged.
func (c *Config) Set(key, value string) error {
	field, ok := settableKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}

	target := field(c)
	prev := *target
	*target = strings.TrimSpace(value)
	if err := c.Validate(); err != nil {
		*target = prev
		return err
	}
	return nil
}
