package service

import (
	"fmt"
	"strconv"

	"github.com/solrun/kvart/internal/config"
)

// ConfigService provides read and update access to the configuration file.
type ConfigService struct {
	core *core
	path string
	cfg  config.Config
}

// Get returns the current configuration.
func (s *ConfigService) Get() config.Config {
	return s.cfg
}

// Path returns the config file location.
func (s *ConfigService) Path() string {
	return s.path
}

// Set updates a single configuration value by key and persists the file.
// Window changes take effect immediately for the running process.
func (s *ConfigService) Set(key, value string) error {
	cfg := s.cfg

	switch key {
	case "start_hour", "end_hour", "segment_minutes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected a number", value, key)
		}
		switch key {
		case "start_hour":
			cfg.StartHour = n
		case "end_hour":
			cfg.EndHour = n
		case "segment_minutes":
			cfg.SegmentMinutes = n
		}
	case "week_start_day":
		if value != "monday" && value != "sunday" {
			return fmt.Errorf("invalid value %q for week_start_day: use monday or sunday", value)
		}
		cfg.WeekStartDay = value
	case "theme":
		cfg.Theme = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	if err := config.Save(s.path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	s.cfg = cfg
	s.core.window = cfg.Window()
	return nil
}

// SetTheme updates the TUI theme name.
func (s *ConfigService) SetTheme(name string) error {
	return s.Set("theme", name)
}
