// Package config handles the TOML configuration for kvart.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/solrun/kvart/internal/track"
)

const (
	// AppName is the application name used for the config directory
	AppName = "kvart"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// StartHour is the first tracked hour of the day (local time)
	StartHour int `toml:"start_hour"`
	// EndHour is the hour the tracked window ends (exclusive)
	EndHour int `toml:"end_hour"`
	// SegmentMinutes is the length of one toggleable time segment
	SegmentMinutes int `toml:"segment_minutes"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the standard day window:
// 07:00-18:00 in 15-minute segments (44 segments per day).
func DefaultConfig() Config {
	return Config{
		StartHour:      7,
		EndHour:        18,
		SegmentMinutes: 15,
		WeekStartDay:   "monday",
		Theme:          "",
	}
}

// Window returns the day window described by the config. An invalid window
// falls back to the default so a bad config file can never break segment
// geometry.
func (c Config) Window() track.Window {
	w := track.Window{
		StartHour:      c.StartHour,
		EndHour:        c.EndHour,
		SegmentMinutes: c.SegmentMinutes,
	}
	if !w.Valid() {
		return track.DefaultWindow()
	}
	return w
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at the given path. A missing file
// yields the defaults without error; a malformed file yields an error.
// Unset window fields are filled in from the defaults.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if cfg.WeekStartDay != "monday" && cfg.WeekStartDay != "sunday" {
		cfg.WeekStartDay = "monday"
	}

	return cfg, nil
}

// Save writes the config to the given path atomically.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}
