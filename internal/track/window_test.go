package track

import (
	"testing"
	"time"
)

func TestWindow_SegmentCount(t *testing.T) {
	if got := DefaultWindow().SegmentCount(); got != 44 {
		t.Errorf("default window: expected 44 segments, got %d", got)
	}

	w := Window{StartHour: 9, EndHour: 17, SegmentMinutes: 30}
	if got := w.SegmentCount(); got != 16 {
		t.Errorf("9-17/30m: expected 16 segments, got %d", got)
	}
}

func TestWindow_Valid(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		want bool
	}{
		{"default", DefaultWindow(), true},
		{"whole day", Window{0, 24, 60}, true},
		{"inverted", Window{18, 7, 15}, false},
		{"empty span", Window{7, 7, 15}, false},
		{"zero segment", Window{7, 18, 0}, false},
		{"segment too long", Window{7, 18, 90}, false},
		{"uneven division", Window{7, 18, 25}, false},
		{"negative start", Window{-1, 18, 15}, false},
		{"past midnight", Window{7, 25, 15}, false},
	}
	for _, tt := range tests {
		if got := tt.w.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWindow_SegmentBounds(t *testing.T) {
	w := DefaultWindow()
	d := day(t, "2024-03-15")

	// Segment 0 spans 07:00-07:15.
	start, end := w.SegmentBounds(d, 0)
	if got := time.UnixMilli(start).Local().Format("15:04:05"); got != "07:00:00" {
		t.Errorf("segment 0 start: expected 07:00:00, got %s", got)
	}
	if got := time.UnixMilli(end).Local().Format("15:04:05"); got != "07:15:00" {
		t.Errorf("segment 0 end: expected 07:15:00, got %s", got)
	}

	// The last segment spans 17:45-18:00.
	start, end = w.SegmentBounds(d, 43)
	if got := time.UnixMilli(start).Local().Format("15:04"); got != "17:45" {
		t.Errorf("segment 43 start: expected 17:45, got %s", got)
	}
	if got := time.UnixMilli(end).Local().Format("15:04"); got != "18:00" {
		t.Errorf("segment 43 end: expected 18:00, got %s", got)
	}
}

func TestWindow_SegmentBounds_Contiguous(t *testing.T) {
	w := DefaultWindow()
	d := day(t, "2024-06-01")

	for n := 0; n < w.SegmentCount()-1; n++ {
		_, end := w.SegmentBounds(d, n)
		start, _ := w.SegmentBounds(d, n+1)
		if end != start {
			t.Fatalf("segments %d and %d are not contiguous", n, n+1)
		}
	}
}

func TestWindow_SegmentAt(t *testing.T) {
	w := DefaultWindow()
	d := day(t, "2024-03-15")
	base := d.Time()

	tests := []struct {
		clock string
		want  int
	}{
		{"07:00", 0},
		{"07:14", 0},
		{"07:15", 1},
		{"12:00", 20},
		{"17:59", 43},
		{"18:00", -1},
		{"06:59", -1},
	}
	for _, tt := range tests {
		clock, _ := time.Parse("15:04", tt.clock)
		at := time.Date(base.Year(), base.Month(), base.Day(),
			clock.Hour(), clock.Minute(), 0, 0, base.Location())
		if got := w.SegmentAt(d, at); got != tt.want {
			t.Errorf("SegmentAt(%s) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestWindow_SegmentLabel(t *testing.T) {
	w := DefaultWindow()
	d := day(t, "2024-03-15")

	if got := w.SegmentLabel(d, 0); got != "07:00" {
		t.Errorf("expected 07:00, got %s", got)
	}
	if got := w.SegmentLabel(d, 5); got != "08:15" {
		t.Errorf("expected 08:15, got %s", got)
	}
}
