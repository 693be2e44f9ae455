package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/timeutil"
)

// dateCmd represents the date command
var dateCmd = &cobra.Command{
	Use:   "date <day>",
	Short: "Change the viewed day",
	Long: `Change the day every other command operates on.

The day can be an ISO date or a relative expression:
  kvart date 2026-03-01    Specific date
  kvart date today         Back to today
  kvart date yesterday     One day back
  kvart date tomorrow      One day forward
  kvart date +3            Three days after the current view
  kvart date -1            One day before the current view

The selection persists until changed again.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selectDate(args[0])
	},
}

// datesCmd represents the dates command
var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List days that have tasks",
	Long: `List every day with at least one task on its board, oldest first.

Examples:
  kvart dates`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listDates()
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(datesCmd)
}

// selectDate parses the day expression and moves the view there.
func selectDate(arg string) {
	svcs, ok := openServices()
	if !ok {
		return
	}

	day, err := timeutil.ParseDay(arg, svcs.View.Selected())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Cannot understand day '%s'\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use an ISO date (2026-03-01), today, yesterday, tomorrow, or +N/-N")
		deps.Exit(1)
		return
	}

	if err := svcs.View.Select(day); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to change the viewed day: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Viewing %s\n", dayHeading(day))
}

// listDates prints all days that carry tasks.
func listDates() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	entries := svcs.View.DatesWithTasks()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No days with tasks yet")
		return
	}

	selected := svcs.View.Selected()
	for _, entry := range entries {
		marker := " "
		if entry.Date == selected {
			marker = "*"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s  %d %s\n",
			marker, entry.Date.Format(), len(entry.Tasks), pluralize("task", len(entry.Tasks)))
	}
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
