package track

import (
	"fmt"
	"sort"
	"time"

	"github.com/solrun/kvart/internal/timeutil"
)

// TaskTime is one recorded span of time attributed to a task: either a
// completed interval or, when End is nil, a still-running timer. Intervals
// for the same task and day may coexist, overlap, or touch; nothing merges
// them. Only segment toggling enforces coverage semantics.
type TaskTime struct {
	Task  int    `json:"task"`
	Start int64  `json:"start"`
	End   *int64 `json:"end,omitempty"`
}

// Overlaps reports whether the interval overlaps the half-open range
// [start, end). An open interval (nil End) extends indefinitely forward and
// therefore overlaps every range it has started before.
func (t TaskTime) Overlaps(start, end int64) bool {
	return t.Start < end && (t.End == nil || *t.End > start)
}

// SegmentInfo describes one segment of a task's day row.
type SegmentInfo struct {
	Start  int64
	End    int64
	Logged bool
}

// Ledger maps calendar days to the time intervals recorded on them.
// Day entries are created lazily and independently of the DateIndex; a day
// may have intervals without tasks and vice versa. As everywhere in the
// core, writes against a missing day are silent no-ops and reads yield
// empty results.
type Ledger struct {
	days map[timeutil.DateKey][]TaskTime
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{days: map[timeutil.DateKey][]TaskTime{}}
}

// CreateDate ensures a day entry exists. Idempotent.
func (l *Ledger) CreateDate(date timeutil.DateKey) {
	if _, ok := l.days[date]; !ok {
		l.days[date] = []TaskTime{}
	}
}

// HasDate reports whether a day entry exists.
func (l *Ledger) HasDate(date timeutil.DateKey) bool {
	_, ok := l.days[date]
	return ok
}

// Segment computes the bounds of segment n on the given day and whether any
// of the task's intervals overlap it. Total: a missing day reads as "no
// intervals logged".
func (l *Ledger) Segment(w Window, date timeutil.DateKey, taskID, n int) SegmentInfo {
	start, end := w.SegmentBounds(date, n)
	info := SegmentInfo{Start: start, End: end}
	for _, t := range l.days[date] {
		if t.Task == taskID && t.Overlaps(start, end) {
			info.Logged = true
			break
		}
	}
	return info
}

// Toggle flips segment n of a task's day row. When no interval of the task
// overlaps the segment, an interval covering exactly the segment is
// inserted. Otherwise every overlapping interval is removed in full, even
// intervals that extend beyond the segment: toggling is deliberately coarse
// and does not clip wider, manually recorded intervals down to their
// uncovered remainder. No-op if the day entry does not exist.
func (l *Ledger) Toggle(w Window, date timeutil.DateKey, taskID, n int) {
	times, ok := l.days[date]
	if !ok {
		return
	}

	start, end := w.SegmentBounds(date, n)

	kept := times[:0]
	removed := false
	for _, t := range times {
		if t.Task == taskID && t.Overlaps(start, end) {
			removed = true
			continue
		}
		kept = append(kept, t)
	}

	if removed {
		l.days[date] = kept
		return
	}
	l.days[date] = append(times, TaskTime{Task: taskID, Start: start, End: &end})
}

// Start appends an open interval for the task beginning now. Nothing stops
// other open intervals first; parallel timers across tasks are permitted by
// the data model. No-op if the day entry does not exist.
func (l *Ledger) Start(date timeutil.DateKey, taskID int) {
	l.StartAt(date, taskID, time.Now().UnixMilli())
}

// StartAt is Start with an explicit starting instant.
func (l *Ledger) StartAt(date timeutil.DateKey, taskID int, start int64) {
	times, ok := l.days[date]
	if !ok {
		return
	}
	l.days[date] = append(times, TaskTime{Task: taskID, Start: start})
}

// Stop closes the interval identified by (taskID, start) by setting its end
// to now. Matching is by exact key equality, not overlap. No-op if no such
// interval exists.
func (l *Ledger) Stop(date timeutil.DateKey, taskID int, start int64) {
	l.StopAt(date, taskID, start, time.Now().UnixMilli())
}

// StopAt is Stop with an explicit ending instant.
func (l *Ledger) StopAt(date timeutil.DateKey, taskID int, start, end int64) {
	times := l.days[date]
	for i, t := range times {
		if t.Task == taskID && t.Start == start {
			e := end
			times[i].End = &e
			return
		}
	}
}

// Record appends a fully specified interval. Unlike the other writes it
// creates the day entry lazily, since it is the restore path for externally
// supplied data.
func (l *Ledger) Record(date timeutil.DateKey, taskID int, start int64, end *int64) {
	l.CreateDate(date)
	t := TaskTime{Task: taskID, Start: start}
	if end != nil {
		e := *end
		t.End = &e
	}
	l.days[date] = append(l.days[date], t)
}

// Remove deletes the single interval matching (taskID, start) exactly.
// No-op if no such interval exists.
func (l *Ledger) Remove(date timeutil.DateKey, taskID int, start int64) {
	times, ok := l.days[date]
	if !ok {
		return
	}
	for i, t := range times {
		if t.Task == taskID && t.Start == start {
			l.days[date] = append(times[:i], times[i+1:]...)
			return
		}
	}
}

// TimesForDate returns a copy of the day's intervals, empty if the day has
// no entry.
func (l *Ledger) TimesForDate(date timeutil.DateKey) []TaskTime {
	return append([]TaskTime{}, l.days[date]...)
}

// TimesForTask returns the day's intervals belonging to the given task.
func (l *Ledger) TimesForTask(date timeutil.DateKey, taskID int) []TaskTime {
	out := []TaskTime{}
	for _, t := range l.days[date] {
		if t.Task == taskID {
			out = append(out, t)
		}
	}
	return out
}

// OpenTimes returns the day's intervals that are still running.
func (l *Ledger) OpenTimes(date timeutil.DateKey) []TaskTime {
	out := []TaskTime{}
	for _, t := range l.days[date] {
		if t.End == nil {
			out = append(out, t)
		}
	}
	return out
}

// TotalMinutes sums the task's tracked time on the given day in whole
// minutes, with open intervals measured up to now. Overlapping intervals
// are summed independently; double-counting is a known consequence of the
// permissive data model and is preserved here.
func (l *Ledger) TotalMinutes(date timeutil.DateKey, taskID int, now time.Time) int {
	nowMillis := now.UnixMilli()
	var millis int64
	for _, t := range l.days[date] {
		if t.Task != taskID {
			continue
		}
		end := nowMillis
		if t.End != nil {
			end = *t.End
		}
		millis += end - t.Start
	}
	return int(millis / 60000)
}

// Entries returns every day entry ordered by date, including days with
// empty interval lists. Used when snapshotting state for persistence.
func (l *Ledger) Entries() []TimeEntry {
	out := make([]TimeEntry, 0, len(l.days))
	for date, times := range l.days {
		out = append(out, TimeEntry{Date: date, TaskTimes: append([]TaskTime{}, times...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TimeEntry pairs a day with its recorded intervals.
type TimeEntry struct {
	Date      timeutil.DateKey `json:"date"`
	TaskTimes []TaskTime       `json:"taskTimes"`
}

// FormatHHMM renders whole minutes as zero-padded HH:MM.
func FormatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
