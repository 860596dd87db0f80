// Package config loads the optional bladr configuration file.
//
// A missing file yields the defaults; command-line flags override
// whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bladr/internal/store"
)

// Config holds user preferences that outlive a single invocation.
type Config struct {
	// DataPath is the event slot location. Empty means the default
	// path under the user's home directory.
	DataPath string `yaml:"data_path"`
	// Store selects the slot backend: "json" (default) or "sqlite".
	Store string `yaml:"store"`
	// WeekStart names the weekday heatmap rows begin on. Sunday is the
	// fixed product default; this is the only way to change it, it is
	// never inferred from locale.
	WeekStart string `yaml:"week_start"`
	// VolumeUnit selects the fluid display unit: "ml", "oz" or "cup".
	VolumeUnit string `yaml:"volume_unit"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var validUnits = map[string]bool{"ml": true, "oz": true, "cup": true}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store:      store.BackendJSON,
		WeekStart:  "sunday",
		VolumeUnit: "ml",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bladr", "config.yaml")
}

// Load reads the config at path, applying defaults for absent fields.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Store == "" {
		cfg.Store = store.BackendJSON
	}
	if cfg.WeekStart == "" {
		cfg.WeekStart = "sunday"
	}
	if cfg.VolumeUnit == "" {
		cfg.VolumeUnit = "ml"
	}

	if _, ok := weekdays[cfg.WeekStart]; !ok {
		return nil, fmt.Errorf("invalid week_start %q in %s", cfg.WeekStart, path)
	}
	if !validUnits[cfg.VolumeUnit] {
		return nil, fmt.Errorf("invalid volume_unit %q in %s", cfg.VolumeUnit, path)
	}
	return cfg, nil
}

// WeekStartDay returns the configured week start as a time.Weekday.
func (c *Config) WeekStartDay() time.Weekday {
	return weekdays[c.WeekStart]
}

// SlotPath returns the configured data path, or the default slot
// location for the backend under the user's home directory.
func (c *Config) SlotPath() string {
	if c.DataPath != "" {
		return c.DataPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	name := store.SlotName + ".json"
	if c.Store == store.BackendSQLite {
		name = store.SlotName + ".db"
	}
	return filepath.Join(home, ".bladr", name)
}
