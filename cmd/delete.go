package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <task>",
	Short: "Delete a task record (with confirmation)",
	Long: `Delete a task record from the registry.

Deletion removes the record itself. Day rows and tracked time that
reference the ID are left in place and keep showing up as "(deleted
task)" until you drop them. Use --force to skip the confirmation prompt.

Examples:
  kvart delete 3
  kvart delete 3 --force`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		deleteTask(args[0], force)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
}

// deleteTask removes a task record after confirmation.
func deleteTask(arg string, force bool) {
	id, ok := parseTaskID(arg)
	if !ok {
		return
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	task, err := svcs.Task.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			reportTaskNotFound(id)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if !force {
		_, _ = fmt.Fprintf(deps.Stdout, "Delete [%d] %s? (y/N): ", task.ID, task.Description)
		reader := bufio.NewReader(deps.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled")
			return
		}
	}

	deleted, err := svcs.Task.Delete(id)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to delete task: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted [%d] %s\n", deleted.ID, deleted.Description)
}
