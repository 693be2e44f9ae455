package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <task>",
	Short: "Start a live timer for a task",
	Long: `Start a live timer for a task on the viewed day.

The interval stays open until 'kvart stop'. Timers are independent per
task: starting one does not stop another, so two tasks can run at once
if that is what you mean to record.

Examples:
  kvart start 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args[0])
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// startTimer opens a live interval for the task.
func startTimer(arg string) {
	id, ok := parseTaskID(arg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Ledger.StartTimer(id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			reportTaskNotFound(id)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to start timer: %v\n", err)
		deps.Exit(1)
		return
	}

	task, _ := svcs.Task.Get(id)
	_, _ = fmt.Fprintf(deps.Stdout, "Started timer for [%d] %s at %s\n",
		id, task.Description, time.Now().Format("15:04"))
}
