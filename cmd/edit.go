package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <task>",
	Short: "Edit a task's description or type",
	Long: `Edit the description or type of an existing task.

The task is addressed by the ID shown on the board. At least one of
--description or --type is required; the other field keeps its value.

Examples:
  kvart edit 3 --description 'review PR backlog'
  kvart edit 3 --type meeting`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editTask(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("description", "", "New description for the task")
	editCmd.Flags().String("type", "", "New type label for the task")
}

// editTask updates a task record in place.
func editTask(cmd *cobra.Command, args []string) {
	id, ok := parseTaskID(args[0])
	if !ok {
		return
	}

	description, _ := cmd.Flags().GetString("description")
	var taskType *string
	if cmd.Flags().Changed("type") {
		v, _ := cmd.Flags().GetString("type")
		taskType = &v
	}

	if description == "" && taskType == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one flag (--description or --type) is required")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage:")
		_, _ = fmt.Fprintln(deps.Stderr, "  kvart edit <task> --description 'new text'")
		_, _ = fmt.Fprintln(deps.Stderr, "  kvart edit <task> --type meeting")
		deps.Exit(1)
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	task, err := svcs.Task.Edit(id, description, taskType)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			reportTaskNotFound(id)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to edit task: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated [%d] %s\n", task.ID, task.Description)
}

// parseTaskID parses a task ID argument, reporting failures to the user.
func parseTaskID(arg string) (int, bool) {
	var id int
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid task ID '%s'. IDs are numbers\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'kvart' to see the board with task IDs")
		deps.Exit(1)
		return 0, false
	}
	return id, true
}

// reportTaskNotFound prints the standard missing-task error and exits.
func reportTaskNotFound(id int) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: No task with ID %d\n", id)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'kvart' to see the board with task IDs")
	deps.Exit(1)
}
