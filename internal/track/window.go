package track

import (
	"time"

	"github.com/solrun/kvart/internal/timeutil"
)

// Window describes the tracked part of a day: segments of SegmentMinutes
// each, from StartHour to EndHour local time. The default window covers
// 07:00-18:00 in 15-minute segments, i.e. 44 segments per day.
type Window struct {
	StartHour      int
	EndHour        int
	SegmentMinutes int
}

// DefaultWindow returns the 07:00-18:00 / 15-minute window.
func DefaultWindow() Window {
	return Window{StartHour: 7, EndHour: 18, SegmentMinutes: 15}
}

// SegmentCount returns the number of segments in the window.
func (w Window) SegmentCount() int {
	return (w.EndHour - w.StartHour) * 60 / w.SegmentMinutes
}

// SegmentsPerHour returns how many segments one hour holds.
func (w Window) SegmentsPerHour() int {
	return 60 / w.SegmentMinutes
}

// Valid reports whether the window is usable: a non-empty hour span that
// divides into whole segments.
func (w Window) Valid() bool {
	if w.StartHour < 0 || w.EndHour > 24 || w.EndHour <= w.StartHour {
		return false
	}
	if w.SegmentMinutes < 1 || w.SegmentMinutes > 60 {
		return false
	}
	return (w.EndHour-w.StartHour)*60%w.SegmentMinutes == 0
}

// SegmentBounds returns the wall-clock boundaries of segment n on the given
// day, as epoch milliseconds. Boundaries are built with calendar arithmetic
// (time.Date normalizes minute overflow) rather than raw millisecond
// addition, so they land on exact clock times even when a DST transition
// falls inside the tracked window.
func (w Window) SegmentBounds(date timeutil.DateKey, n int) (start, end int64) {
	day := date.Time()
	y, m, d := day.Date()
	loc := day.Location()

	startTime := time.Date(y, m, d, w.StartHour, n*w.SegmentMinutes, 0, 0, loc)
	endTime := time.Date(y, m, d, w.StartHour, (n+1)*w.SegmentMinutes, 0, 0, loc)
	return startTime.UnixMilli(), endTime.UnixMilli()
}

// SegmentAt returns the index of the segment containing the given instant
// on the given day, or -1 if the instant falls outside the window. Used to
// mark "now" when rendering the day board.
func (w Window) SegmentAt(date timeutil.DateKey, at time.Time) int {
	millis := at.UnixMilli()
	for n := 0; n < w.SegmentCount(); n++ {
		start, end := w.SegmentBounds(date, n)
		if millis >= start && millis < end {
			return n
		}
	}
	return -1
}

// SegmentLabel renders the start of segment n as a clock time (HH:MM).
func (w Window) SegmentLabel(date timeutil.DateKey, n int) string {
	start, _ := w.SegmentBounds(date, n)
	return time.UnixMilli(start).Local().Format("15:04")
}
