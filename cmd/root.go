package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "kvart",
	Short: "A quarter-hour time tracking application",
	Long: `kvart tracks your workday in 15-minute segments.

Each day has its own task list. Every task gets a row of segments
spanning the working window (07:00-18:00 by default); toggle a segment
to log that quarter hour, or run a live timer instead.

Usage:
  kvart                              Show the board for the viewed day
  kvart add <description>            Add a task to the viewed day
  kvart toggle <task> <segment>      Toggle a quarter-hour segment
  kvart start <task>                 Start a live timer
  kvart stop <task>                  Stop the timer and record the interval
  kvart date <day>                   Change the viewed day (e.g. 2026-03-01, yesterday, +1)
  kvart report [--week]              Show tracked totals
  kvart tui                          Launch the interactive board`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		showBoard()
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"kvart version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showBoard prints the viewed day's tasks with their segment rows and totals.
func showBoard() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	day := svcs.View.Selected()
	_, _ = fmt.Fprintln(deps.Stdout, dayHeading(day))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	rows := svcs.Task.Rows()
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks for this day")
		_, _ = fmt.Fprintln(deps.Stdout, "Add one with: kvart add <description>")
		return
	}

	totals, dayTotal := svcs.Ledger.Totals()
	byID := make(map[int]service.TaskTotal, len(totals))
	for _, tt := range totals {
		byID[tt.Row.ID] = tt
	}

	for _, row := range rows {
		segs := svcs.Ledger.Segments(row.ID)
		_, _ = fmt.Fprintf(deps.Stdout, "[%d] %-24s %s %s\n",
			row.ID,
			truncate(row.Description, 24),
			segmentRow(segs),
			byID[row.ID].Formatted())
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", service.FormatMinutes(dayTotal))

	for _, timer := range svcs.Ledger.OpenTimers() {
		_, _ = fmt.Fprintf(deps.Stdout, "Timer running: [%d] %s (%s)\n",
			timer.Row.ID, timer.Row.Description, formatElapsed(timer.Elapsed))
	}
}

// dayHeading formats a date header, marking today for orientation.
func dayHeading(day timeutil.DateKey) string {
	heading := day.FormatLong()
	if day == timeutil.Today() {
		heading += " (today)"
	}
	return heading
}

// segmentRow renders a run of segments as # (logged) and . (free).
func segmentRow(segs []bool) string {
	var b strings.Builder
	for _, logged := range segs {
		if logged {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// truncate shortens a string to max characters, marking the cut. Counts
// runes so multi-byte descriptions are never split mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// formatElapsed formats a running duration as a human-readable string
func formatElapsed(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
