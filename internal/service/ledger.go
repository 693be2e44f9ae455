package service

import (
	"fmt"
	"time"

	"github.com/solrun/kvart/internal/timeutil"
	"github.com/solrun/kvart/internal/track"
)

// LedgerService provides operations on the viewed day's time ledger.
type LedgerService struct {
	core *core
}

// Toggle flips one segment of a task's row on the viewed day.
func (s *LedgerService) Toggle(taskID, segment int) error {
	w := s.core.window
	if segment < 0 || segment >= w.SegmentCount() {
		return fmt.Errorf("%w: valid range is 0-%d", ErrSegmentOutOfRange, w.SegmentCount()-1)
	}

	st := s.core.state
	st.Ledger.CreateDate(st.SelectedDate)
	st.Ledger.Toggle(w, st.SelectedDate, taskID, segment)
	return s.core.save()
}

// StartTimer opens a running interval for the task on the viewed day.
// Other running timers are left alone; parallel timers are permitted.
func (s *LedgerService) StartTimer(taskID int) error {
	st := s.core.state
	if _, ok := st.Tasks.Get(taskID); !ok {
		return ErrTaskNotFound
	}

	st.Ledger.CreateDate(st.SelectedDate)
	st.Ledger.Start(st.SelectedDate, taskID)
	return s.core.save()
}

// StopTimer closes the task's most recently started open interval on the
// viewed day and returns the closed interval.
func (s *LedgerService) StopTimer(taskID int) (track.TaskTime, error) {
	st := s.core.state
	date := st.SelectedDate

	var latest *track.TaskTime
	for _, t := range st.Ledger.OpenTimes(date) {
		if t.Task != taskID {
			continue
		}
		if latest == nil || t.Start > latest.Start {
			tt := t
			latest = &tt
		}
	}
	if latest == nil {
		return track.TaskTime{}, ErrNoOpenInterval
	}

	st.Ledger.Stop(date, taskID, latest.Start)
	if err := s.core.save(); err != nil {
		return track.TaskTime{}, err
	}

	for _, t := range st.Ledger.TimesForTask(date, taskID) {
		if t.Start == latest.Start {
			return t, nil
		}
	}
	return *latest, nil
}

// Log records a completed interval from two wall-clock times (HH:MM) on the
// viewed day.
func (s *LedgerService) Log(taskID int, startClock, endClock string) error {
	st := s.core.state
	date := st.SelectedDate

	start, err := parseClock(date, startClock)
	if err != nil {
		return err
	}
	end, err := parseClock(date, endClock)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidInterval
	}

	st.Ledger.Record(date, taskID, start, &end)
	return s.core.save()
}

// Unlog removes the interval starting at the given wall-clock time (HH:MM)
// on the viewed day.
func (s *LedgerService) Unlog(taskID int, startClock string) error {
	st := s.core.state
	date := st.SelectedDate

	start, err := parseClock(date, startClock)
	if err != nil {
		return err
	}

	found := false
	for _, t := range st.Ledger.TimesForTask(date, taskID) {
		if t.Start == start {
			found = true
			break
		}
	}
	if !found {
		return ErrIntervalNotFound
	}

	st.Ledger.Remove(date, taskID, start)
	return s.core.save()
}

// Segments returns the logged flag of every segment in the task's row on
// the viewed day, in segment order.
func (s *LedgerService) Segments(taskID int) []bool {
	return s.SegmentsForDate(s.core.state.SelectedDate, taskID)
}

// SegmentsForDate is Segments for an arbitrary day.
func (s *LedgerService) SegmentsForDate(date timeutil.DateKey, taskID int) []bool {
	w := s.core.window
	out := make([]bool, w.SegmentCount())
	for n := range out {
		out[n] = s.core.state.Ledger.Segment(w, date, taskID, n).Logged
	}
	return out
}

// Totals aggregates tracked minutes per task for the viewed day, in board
// order, together with the day's grand total.
func (s *LedgerService) Totals() ([]TaskTotal, int) {
	return s.TotalsForDate(s.core.state.SelectedDate)
}

// TotalsForDate is Totals for an arbitrary day.
func (s *LedgerService) TotalsForDate(date timeutil.DateKey) ([]TaskTotal, int) {
	st := s.core.state
	now := time.Now()

	seen := map[int]bool{}
	var totals []TaskTotal
	dayTotal := 0
	for _, id := range st.Days.Tasks(date) {
		if seen[id] {
			continue
		}
		seen[id] = true
		minutes := st.Ledger.TotalMinutes(date, id, now)
		totals = append(totals, TaskTotal{Row: s.core.row(id), Minutes: minutes})
		dayTotal += minutes
	}
	return totals, dayTotal
}

// OpenTimers returns the still-running intervals on the viewed day.
func (s *LedgerService) OpenTimers() []OpenTimer {
	st := s.core.state
	now := time.Now()

	var out []OpenTimer
	for _, t := range st.Ledger.OpenTimes(st.SelectedDate) {
		start := time.UnixMilli(t.Start).Local()
		out = append(out, OpenTimer{
			Row:     s.core.row(t.Task),
			Start:   start,
			Elapsed: now.Sub(start),
		})
	}
	return out
}

// HasOpenTimer reports whether any interval is running on the viewed day.
func (s *LedgerService) HasOpenTimer() bool {
	st := s.core.state
	return len(st.Ledger.OpenTimes(st.SelectedDate)) > 0
}

// parseClock turns an HH:MM string into epoch milliseconds on the given day.
func parseClock(date timeutil.DateKey, clock string) (int64, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (use HH:MM, e.g. 07:30)", clock)
	}
	day := date.Time()
	at := time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
	return at.UnixMilli(), nil
}
