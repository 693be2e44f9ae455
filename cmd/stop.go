package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop <task>",
	Short: "Stop a task's running timer",
	Long: `Stop the task's running timer and record the closed interval.

If several timers were started for the same task, the most recently
started one is closed.

Examples:
  kvart stop 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer(args[0])
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

// stopTimer closes the task's open interval and reports what was recorded.
func stopTimer(arg string) {
	id, ok := parseTaskID(arg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	closed, err := svcs.Ledger.StopTimer(id)
	if err != nil {
		if errors.Is(err, service.ErrNoOpenInterval) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No running timer for task %d\n", id)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'kvart start <task>'")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to stop timer: %v\n", err)
		deps.Exit(1)
		return
	}

	start := time.UnixMilli(closed.Start).Local()
	end := time.UnixMilli(*closed.End).Local()
	_, _ = fmt.Fprintf(deps.Stdout, "Stopped timer for [%d]: %s-%s (%s)\n",
		id, start.Format("15:04"), end.Format("15:04"), formatElapsed(end.Sub(start)))
}
