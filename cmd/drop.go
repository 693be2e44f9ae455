package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dropCmd represents the drop command
var dropCmd = &cobra.Command{
	Use:   "drop <task>",
	Short: "Remove a task from the viewed day's board",
	Long: `Remove a task from the viewed day's board.

Unlike delete, drop only takes the task off this day. The task record
stays in the registry and any appearances on other days are untouched.

Examples:
  kvart drop 3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dropTask(args[0])
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
}

// dropTask removes the task ID from the viewed day only.
func dropTask(arg string) {
	id, ok := parseTaskID(arg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Task.Drop(id); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to drop task: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Dropped [%d] from %s\n", id, svcs.View.Selected().Format())
}
