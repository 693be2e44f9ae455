package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
	"github.com/solrun/kvart/internal/timeutil"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show tracked totals for the viewed day or week",
	Long: `Show per-task tracked totals.

By default the report covers the viewed day. With --week it covers the
whole week containing the viewed day, one line per day plus a grand
total. Weeks start on the configured week_start_day.

Totals are the plain sum of recorded intervals: overlapping intervals
count double, and a running timer counts up to now.

Examples:
  kvart report
  kvart report --week`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		week, _ := cmd.Flags().GetBool("week")
		if week {
			showWeekReport()
		} else {
			showDayReport()
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("week", false, "Report on the whole week of the viewed day")
}

// showDayReport prints per-task totals for the viewed day.
func showDayReport() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	day := svcs.View.Selected()
	totals, dayTotal := svcs.Ledger.Totals()

	_, _ = fmt.Fprintln(deps.Stdout, dayHeading(day))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 44))

	if len(totals) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing tracked")
		return
	}

	for _, tt := range totals {
		printTotalLine(tt)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 44))
	_, _ = fmt.Fprintf(deps.Stdout, "%-32s %s\n", "Total", service.FormatMinutes(dayTotal))
}

// showWeekReport prints one line per day of the viewed week plus the sum.
func showWeekReport() {
	svcs, ok := openServices()
	if !ok {
		return
	}

	cfg := svcs.Config.Get()
	start := timeutil.StartOfWeek(svcs.View.Selected(), cfg.WeekStartDay)
	end := start.AddDays(6)

	_, _ = fmt.Fprintf(deps.Stdout, "Week %s - %s\n", start.Format(), end.Format())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 44))

	weekTotal := 0
	for n := 0; n < 7; n++ {
		day := start.AddDays(n)
		_, dayTotal := svcs.Ledger.TotalsForDate(day)
		weekTotal += dayTotal
		_, _ = fmt.Fprintf(deps.Stdout, "%-32s %s\n", day.FormatLong(), service.FormatMinutes(dayTotal))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 44))
	_, _ = fmt.Fprintf(deps.Stdout, "%-32s %s\n", "Total", service.FormatMinutes(weekTotal))
}

// printTotalLine renders one task's total, marking orphaned rows.
func printTotalLine(tt service.TaskTotal) {
	label := fmt.Sprintf("[%d] %s", tt.Row.ID, tt.Row.Description)
	_, _ = fmt.Fprintf(deps.Stdout, "%-32s %s\n", truncate(label, 32), tt.Formatted())
}
