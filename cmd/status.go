package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show running timers",
	Long: `Show the timers currently running on the viewed day.

Displays each open timer's task, start time and elapsed time. If no
timer is running, displays a message indicating that.

Examples:
  kvart status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus displays every open timer on the viewed day.
func showStatus() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	timers := svcs.Ledger.OpenTimers()
	if len(timers) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
		_, _ = fmt.Fprintln(deps.Stdout, "Start one with: kvart start <task>")
		return
	}

	for _, timer := range timers {
		_, _ = fmt.Fprintln(deps.Stdout, "Timer running:")
		_, _ = fmt.Fprintf(deps.Stdout, "  [%d] %s\n", timer.Row.ID, timer.Row.Description)
		_, _ = fmt.Fprintf(deps.Stdout, "  Started: %s\n", formatStartTime(timer.Start))
		_, _ = fmt.Fprintf(deps.Stdout, "  Elapsed: %s\n", formatElapsed(timer.Elapsed))
	}
}

// formatStartTime renders a timer start, marking today for orientation.
func formatStartTime(start time.Time) string {
	now := time.Now()
	isToday := start.Year() == now.Year() &&
		start.Month() == now.Month() &&
		start.Day() == now.Day()

	if isToday {
		return fmt.Sprintf("today at %s", start.Format("15:04"))
	}
	return fmt.Sprintf("%s at %s", start.Format("Mon Jan 2"), start.Format("15:04"))
}
