package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/solrun/kvart/internal/tui/ui"
)

// SegmentRenderOptions configures how a task's segment row is rendered.
type SegmentRenderOptions struct {
	Cursor   int // Segment under the keyboard cursor (-1 for none)
	Now      int // Segment containing the current wall-clock time (-1 outside window)
	Selected bool
}

// RenderSegmentRow renders one task's segments as a run of block glyphs.
// Logged segments are filled, free segments hollow; the cursor and the
// current time get their own marks.
func RenderSegmentRow(segs []bool, styles ui.Styles, opts SegmentRenderOptions) string {
	var b strings.Builder
	for n, logged := range segs {
		glyph := "·"
		style := styles.SegmentFree
		if logged {
			glyph = "█"
			style = styles.SegmentLogged
		}
		if opts.Selected && n == opts.Cursor {
			style = styles.SegmentCursor
		} else if n == opts.Now {
			style = styles.SegmentNow
		}
		b.WriteString(style.Render(glyph))
	}
	return b.String()
}

// hourRuler renders a ruler for the segment grid, one hour label at each
// hour boundary.
func hourRuler(startHour, segmentsPerHour, count int) string {
	ruler := make([]byte, count)
	for i := range ruler {
		ruler[i] = ' '
	}
	for n := 0; n < count; n += segmentsPerHour {
		label := fmt.Sprintf("%d", startHour+n/segmentsPerHour)
		for j := 0; j < len(label) && n+j < count; j++ {
			ruler[n+j] = label[j]
		}
	}
	return string(ruler)
}

// formatElapsedTime formats a running duration as a human-readable string
func formatElapsedTime(d time.Duration) string {
	totalMinutes := int(d.Minutes())
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm", totalMinutes)
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
