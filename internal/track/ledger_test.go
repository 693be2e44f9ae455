package track

import (
	"testing"
	"time"
)

func TestTaskTime_Overlaps(t *testing.T) {
	end := int64(200)
	closed := TaskTime{Task: 1, Start: 100, End: &end}

	tests := []struct {
		name       string
		start, end int64
		want       bool
	}{
		{"inside", 120, 180, true},
		{"covers", 50, 250, true},
		{"left overlap", 50, 150, true},
		{"right overlap", 150, 250, true},
		{"touching left", 0, 100, false},
		{"touching right", 200, 300, false},
		{"disjoint", 300, 400, false},
	}
	for _, tt := range tests {
		if got := closed.Overlaps(tt.start, tt.end); got != tt.want {
			t.Errorf("%s: Overlaps(%d, %d) = %v, want %v", tt.name, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestTaskTime_Overlaps_Open(t *testing.T) {
	open := TaskTime{Task: 1, Start: 100}

	// An open interval extends indefinitely forward.
	if !open.Overlaps(150, 200) {
		t.Error("open interval should overlap a range after its start")
	}
	if !open.Overlaps(1_000_000, 2_000_000) {
		t.Error("open interval should overlap far-future ranges")
	}
	if open.Overlaps(0, 100) {
		t.Error("open interval should not overlap a range ending at its start")
	}
}

func TestLedger_Segment_MissingDate(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")

	// Reads are total: a missing day just means nothing is logged.
	info := l.Segment(w, d, 1, 0)
	if info.Logged {
		t.Error("expected unlogged segment on missing date")
	}
	if info.Start >= info.End {
		t.Error("bounds must still be computed for missing dates")
	}
}

func TestLedger_Toggle_RoundTrip(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	l.Toggle(w, d, 1, 5)
	if !l.Segment(w, d, 1, 5).Logged {
		t.Fatal("expected segment logged after first toggle")
	}
	times := l.TimesForTask(d, 1)
	if len(times) != 1 {
		t.Fatalf("expected one interval, got %d", len(times))
	}
	start, end := w.SegmentBounds(d, 5)
	if times[0].Start != start || times[0].End == nil || *times[0].End != end {
		t.Errorf("interval should cover exactly the segment: %+v", times[0])
	}

	l.Toggle(w, d, 1, 5)
	if l.Segment(w, d, 1, 5).Logged {
		t.Error("expected segment unlogged after second toggle")
	}
	if got := l.TimesForTask(d, 1); len(got) != 0 {
		t.Errorf("expected zero intervals after round trip, got %v", got)
	}
}

func TestLedger_Toggle_MissingDate(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")

	l.Toggle(w, d, 1, 0)
	if l.HasDate(d) {
		t.Error("toggle must not create a missing date entry")
	}
}

func TestLedger_Toggle_RemovesWiderIntervalEntirely(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	// A manually recorded 07:00-07:30 interval covers segments 0 and 1.
	s0, _ := w.SegmentBounds(d, 0)
	_, e1 := w.SegmentBounds(d, 1)
	l.Record(d, 1, s0, &e1)

	if !l.Segment(w, d, 1, 0).Logged || !l.Segment(w, d, 1, 1).Logged {
		t.Fatal("expected both segments covered by the wide interval")
	}

	// Toggling segment 0 removes the whole interval, not just its first
	// half. This coarse behavior is the intended current design.
	l.Toggle(w, d, 1, 0)
	if l.Segment(w, d, 1, 1).Logged {
		t.Error("expected segment 1 cleared too: overlapping intervals are removed in full")
	}
	if got := l.TimesForTask(d, 1); len(got) != 0 {
		t.Errorf("expected no intervals left, got %v", got)
	}
}

func TestLedger_Toggle_RemovesAllOverlapping(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	// Two overlapping intervals both cover segment 2.
	s2, e2 := w.SegmentBounds(d, 2)
	l.Record(d, 1, s2, &e2)
	wideEnd := e2 + 30*60000
	l.Record(d, 1, s2, &wideEnd)

	l.Toggle(w, d, 1, 2)
	if got := l.TimesForTask(d, 1); len(got) != 0 {
		t.Errorf("expected every overlapping interval removed, got %v", got)
	}
}

func TestLedger_Toggle_OtherTaskUnaffected(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	l.Toggle(w, d, 1, 0)
	l.Toggle(w, d, 2, 0)
	l.Toggle(w, d, 1, 0)

	if l.Segment(w, d, 1, 0).Logged {
		t.Error("task 1 should be unlogged")
	}
	if !l.Segment(w, d, 2, 0).Logged {
		t.Error("task 2 should still be logged")
	}
}

func TestLedger_PerDateIsolation(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d1 := day(t, "2024-03-15")
	d2 := day(t, "2024-03-16")
	l.CreateDate(d1)
	l.CreateDate(d2)

	// The same task ID is active on both days; mutations on one day must
	// not leak into the other.
	l.Toggle(w, d1, 1, 0)
	l.Toggle(w, d1, 1, 1)

	if got := l.TimesForDate(d2); len(got) != 0 {
		t.Errorf("expected no intervals on %s, got %v", d2.Format(), got)
	}
	if l.Segment(w, d2, 1, 0).Logged {
		t.Error("segment on the other day must not be logged")
	}
}

func TestLedger_Aggregation_FourSegments(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	for n := 0; n < 4; n++ {
		l.Toggle(w, d, 1, n)
	}

	minutes := l.TotalMinutes(d, 1, time.Now())
	if minutes != 60 {
		t.Errorf("four 15-minute segments: expected 60 minutes, got %d", minutes)
	}
	if got := FormatHHMM(minutes); got != "01:00" {
		t.Errorf("expected 01:00, got %s", got)
	}
}

func TestLedger_Aggregation_DoubleCountsOverlap(t *testing.T) {
	l := NewLedger()
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	// Two identical 15-minute intervals: durations sum independently.
	s0, e0 := w.SegmentBounds(d, 0)
	l.Record(d, 1, s0, &e0)
	l.Record(d, 1, s0, &e0)

	if minutes := l.TotalMinutes(d, 1, time.Now()); minutes != 30 {
		t.Errorf("overlapping intervals are double-counted: expected 30, got %d", minutes)
	}
}

func TestLedger_Aggregation_OpenInterval(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	now := time.Now()
	l.StartAt(d, 1, now.Add(-25*time.Minute).UnixMilli())

	if minutes := l.TotalMinutes(d, 1, now); minutes != 25 {
		t.Errorf("open interval measured to now: expected 25, got %d", minutes)
	}
}

func TestLedger_StartStop(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	start := int64(1000)
	l.StartAt(d, 1, start)

	open := l.OpenTimes(d)
	if len(open) != 1 || open[0].Task != 1 {
		t.Fatalf("expected one open interval for task 1, got %v", open)
	}

	l.StopAt(d, 1, start, 61000)
	if got := l.OpenTimes(d); len(got) != 0 {
		t.Errorf("expected no open intervals after stop, got %v", got)
	}
	times := l.TimesForTask(d, 1)
	if times[0].End == nil || *times[0].End != 61000 {
		t.Errorf("expected end 61000, got %+v", times[0])
	}
}

func TestLedger_Start_ParallelTimersAllowed(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	// Nothing auto-stops other timers; parallel open intervals are allowed
	// by the data model.
	l.StartAt(d, 1, 1000)
	l.StartAt(d, 2, 2000)

	if got := l.OpenTimes(d); len(got) != 2 {
		t.Errorf("expected two parallel open intervals, got %v", got)
	}
}

func TestLedger_Start_MissingDate(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")

	l.StartAt(d, 1, 1000)
	if l.HasDate(d) {
		t.Error("start must not create a missing date entry")
	}
}

func TestLedger_Stop_NoMatch(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")
	l.CreateDate(d)
	l.StartAt(d, 1, 1000)

	// Wrong start key: no-op.
	l.StopAt(d, 1, 9999, 2000)
	if got := l.OpenTimes(d); len(got) != 1 {
		t.Errorf("expected interval still open, got %v", got)
	}
}

func TestLedger_Record_CreatesDate(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")

	end := int64(2000)
	l.Record(d, 1, 1000, &end)

	if !l.HasDate(d) {
		t.Error("record should create the date entry lazily (restore path)")
	}
	if got := l.TimesForDate(d); len(got) != 1 {
		t.Errorf("expected one interval, got %v", got)
	}
}

func TestLedger_Remove_ExactMatchOnly(t *testing.T) {
	l := NewLedger()
	d := day(t, "2024-03-15")
	l.CreateDate(d)

	end := int64(2000)
	l.Record(d, 1, 1000, &end)
	l.Record(d, 1, 3000, nil)

	// Removal matches by (task, start) key equality, and removes one.
	l.Remove(d, 1, 1000)
	times := l.TimesForTask(d, 1)
	if len(times) != 1 || times[0].Start != 3000 {
		t.Errorf("expected only the 3000 interval left, got %v", times)
	}

	// No match: no-op.
	l.Remove(d, 1, 7777)
	if got := l.TimesForTask(d, 1); len(got) != 1 {
		t.Errorf("expected no change, got %v", got)
	}
}

func TestFormatHHMM(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{75, "01:15"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		if got := FormatHHMM(tt.minutes); got != tt.want {
			t.Errorf("FormatHHMM(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}
