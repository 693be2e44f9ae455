package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log <task> <start> <end>",
	Short: "Record a time interval by clock times",
	Long: `Record a closed interval for a task on the viewed day.

Start and end are clock times in HH:MM. Intervals do not have to align
with segment boundaries and may overlap other recorded time; overlaps
count double in totals.

Examples:
  kvart log 1 09:00 10:30
  kvart log 2 13:05 13:50`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		logInterval(args[0], args[1], args[2])
	},
}

// unlogCmd represents the unlog command
var unlogCmd = &cobra.Command{
	Use:   "unlog <task> <start>",
	Short: "Remove a recorded interval by its start time",
	Long: `Remove one recorded interval from the viewed day.

The interval is addressed by its task and exact start time in HH:MM.

Examples:
  kvart unlog 1 09:00`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		unlogInterval(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(unlogCmd)
}

// logInterval records a closed interval parsed from clock times.
func logInterval(taskArg, startArg, endArg string) {
	id, ok := parseTaskID(taskArg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Ledger.Log(id, startArg, endArg); err != nil {
		if errors.Is(err, service.ErrInvalidInterval) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Interval start must be before its end")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to log interval: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use 24-hour clock times like 09:00")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged [%d] %s-%s on %s\n", id, startArg, endArg, svcs.View.Selected().Format())
}

// unlogInterval removes an interval addressed by task and start time.
func unlogInterval(taskArg, startArg string) {
	id, ok := parseTaskID(taskArg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Ledger.Unlog(id, startArg); err != nil {
		if errors.Is(err, service.ErrIntervalNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No interval for task %d starting at %s\n", id, startArg)
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to remove interval: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed [%d] interval starting %s\n", id, startArg)
}
