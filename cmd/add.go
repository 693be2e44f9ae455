package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task to the viewed day",
	Long: `Add a task to the viewed day's board.

The task gets the next free ID and an empty segment row. An optional
--type labels the task (e.g. meeting, focus) for your own grouping.

Examples:
  kvart add write quarterly report
  kvart add standup --type meeting`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskType, _ := cmd.Flags().GetString("type")
		addTask(strings.Join(args, " "), taskType)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("type", "", "Optional task type label")
}

// addTask creates a task on the viewed day and reports the assigned ID.
func addTask(description, taskType string) {
	svcs, ok := openServices()
	if !ok {
		return
	}

	task, err := svcs.Task.Add(description, taskType)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDescription) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
			deps.Exit(1)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to add task: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added [%d] %s to %s\n", task.ID, task.Description, svcs.View.Selected().Format())
}
