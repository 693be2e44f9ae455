package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reorderCmd represents the reorder command
var reorderCmd = &cobra.Command{
	Use:   "reorder <task>...",
	Short: "Reorder the viewed day's board",
	Long: `Replace the viewed day's task order with the given ID sequence.

The sequence you pass becomes the new board order, wholesale. IDs left
out of the sequence disappear from the day (their records and tracked
time remain).

Examples:
  kvart reorder 3 1 2`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reorderTasks(args)
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}

// reorderTasks replaces the day's task order with the parsed ID list.
func reorderTasks(args []string) {
	order := make([]int, 0, len(args))
	for _, arg := range args {
		id, ok := parseTaskID(arg)
		if !ok {
			return
		}
		order = append(order, id)
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	if err := svcs.Task.Reorder(order); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to reorder tasks: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Reordered %s\n", svcs.View.Selected().Format())
}
