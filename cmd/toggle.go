package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solrun/kvart/internal/service"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle <task> <segment>...",
	Short: "Toggle quarter-hour segments for a task",
	Long: `Toggle segments of a task's row on the viewed day.

Segments are numbered from 0 at the start of the working window. With
the default window, segment 0 is 07:00-07:15 and segment 43 is
17:45-18:00. Toggling a free segment logs it; toggling a logged segment
clears every recorded interval that touches it, including wider blocks
logged with 'kvart log' or a timer.

Examples:
  kvart toggle 1 0       Log 07:00-07:15 for task 1
  kvart toggle 1 0       Clear it again
  kvart toggle 1 4 5 6   Log 08:00-08:45 in one go`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		toggleSegments(args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

// toggleSegments flips segments of the viewed day's ledger.
func toggleSegments(taskArg string, segmentArgs []string) {
	id, ok := parseTaskID(taskArg)
	if !ok {
		return
	}

	segments := make([]int, 0, len(segmentArgs))
	for _, arg := range segmentArgs {
		var segment int
		if _, err := fmt.Sscanf(arg, "%d", &segment); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid segment '%s'. Segments are numbers\n", arg)
			deps.Exit(1)
			return
		}
		segments = append(segments, segment)
	}

	svcs, ok := openServices()
	if !ok {
		return
	}

	for _, segment := range segments {
		if err := svcs.Ledger.Toggle(id, segment); err != nil {
			if errors.Is(err, service.ErrSegmentOutOfRange) {
				window := svcs.Window()
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Segment %d is out of range\n", segment)
				_, _ = fmt.Fprintf(deps.Stderr, "Valid range: 0-%d (%02d:00-%02d:00 in %d-minute steps)\n",
					window.SegmentCount()-1, window.StartHour, window.EndHour, window.SegmentMinutes)
				deps.Exit(1)
				return
			}
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to toggle segment: %v\n", err)
			deps.Exit(1)
			return
		}

		window := svcs.Window()
		state := "cleared"
		if svcs.Ledger.Segments(id)[segment] {
			state = "logged"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%d] %s %s\n", id, window.SegmentLabel(svcs.View.Selected(), segment), state)
	}
}
