package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for kvart.

Shows the configuration file location, whether it exists, and all
current settings. Configuration values are merged from the config file
with sensible defaults.

By default, kvart works without any configuration file. All settings
have defaults:
  - start_hour: 7
  - end_hour: 18
  - segment_minutes: 15
  - week_start_day: monday
  - theme: (built-in)

Examples:

  Display current configuration:
    kvart config

  Change a setting:
    kvart config set start_hour 8
    kvart config set theme dracula

Configuration file location:
  ~/.config/kvart/config.toml        Linux/macOS
  %APPDATA%\kvart\config.toml        Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration setting",
	Long: `Change one configuration setting and write it to the config file.

Keys: start_hour, end_hour, segment_minutes, week_start_day, theme.

Examples:
  kvart config set start_hour 8
  kvart config set week_start_day sunday`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setConfig(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	configPath := svcs.Config.Path()
	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}
	cfg := svcs.Config.Get()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for kvart")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Start Hour:      %d\n", cfg.StartHour)
	_, _ = fmt.Fprintf(deps.Stdout, "End Hour:        %d\n", cfg.EndHour)
	_, _ = fmt.Fprintf(deps.Stdout, "Segment Minutes: %d\n", cfg.SegmentMinutes)
	_, _ = fmt.Fprintf(deps.Stdout, "Week Start Day:  %s\n", cfg.WeekStartDay)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:           (built-in)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Change settings with 'kvart config set <key> <value>'.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// setConfig updates one setting through the config service.
func setConfig(key, value string) {
	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Config.Set(key, value); err != nil {
		if errors.Is(err, service.ErrUnknownConfigKey) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown setting '%s'\n", key)
			_, _ = fmt.Fprintln(deps.Stderr, "Valid keys: start_hour, end_hour, segment_minutes, week_start_day, theme")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", key, value)
}
