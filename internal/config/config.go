// Package config reads and writes the per-project menu settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/marcus/floatmenu/pkg/floatmenu/position"
	"github.com/marcus/floatmenu/pkg/floatmenu/theme"
)

const configFile = ".floatmenu/config.json"

// Config holds the settings the demo and the menus read at startup.
type Config struct {
	Theme     string `json:"theme,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Placement string `json:"placement,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	ShowHints bool   `json:"show_hints,omitempty"`
}

// Environment variables that override the project config.
const (
	EnvTheme     = "FLOATMENU_THEME"
	EnvLocale    = "FLOATMENU_LOCALE"
	EnvPlacement = "FLOATMENU_PLACEMENT"
	EnvStrategy  = "FLOATMENU_STRATEGY"
	EnvShowHints = "FLOATMENU_SHOW_HINTS"
)

// ErrUnknownKey is returned by Set for keys Config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Resolve loads the project config and applies environment overrides.
// Priority: env > project-local config.
func Resolve(baseDir string) (*Config, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from FLOATMENU_* variables that are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(EnvPlacement); v != "" {
		c.Placement = v
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvShowHints); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ShowHints = b
		}
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := theme.Parse(c.Theme); err != nil {
		return err
	}
	if _, err := position.ParsePlacement(c.Placement); err != nil {
		return err
	}
	if _, err := position.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// Keys lists the keys accepted by Get and Set.
func Keys() []string {
	keys := []string{"theme", "locale", "placement", "strategy", "show_hints"}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "theme":
		return c.Theme, nil
	case "locale":
		return c.Locale, nil
	case "placement":
		return c.Placement, nil
	case "strategy":
		return c.Strategy, nil
	case "show_hints":
		return strconv.FormatBool(c.ShowHints), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set updates key from a string value and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "theme":
		next.Theme = value
	case "locale":
		next.Locale = value
	case "placement":
		next.Placement = value
	case "strategy":
		next.Strategy = value
	case "show_hints":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_hints: %w", err)
		}
		next.ShowHints = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// SetValue loads the project config, sets key and saves it.
func SetValue(baseDir, key, value string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	return Save(baseDir, cfg)
}
