package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for kvart.

The TUI shows the day board as a grid of quarter-hour segments with
keyboard navigation and live timer updates.

Views available:
  - Board: The day's tasks and their segment rows
  - Report: Tracked totals for the day and week
  - Config: View and change settings

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - h/l or arrows: Move between segments
  - j/k: Move between tasks
  - Space: Toggle the selected segment
  - [/]: Previous/next day
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
