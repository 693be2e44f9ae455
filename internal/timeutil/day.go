// Package timeutil provides calendar-day helpers for kvart.
//
// All per-day collections in kvart are keyed by a DateKey: the epoch
// millisecond timestamp of local midnight on that day. Using a single
// normalized integer key keeps map lookups trivial and matches the
// persisted snapshot layout.
package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// DateKey identifies a calendar day as epoch milliseconds at local midnight.
type DateKey int64

// Normalize returns the DateKey for the calendar day containing t,
// computed in t's location.
func Normalize(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey(time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli())
}

// Today returns the DateKey for the current local day.
func Today() DateKey {
	return Normalize(time.Now())
}

// Time returns local midnight of the day identified by k.
func (k DateKey) Time() time.Time {
	return time.UnixMilli(int64(k)).Local()
}

// AddDays returns the DateKey n calendar days after k. Negative n moves
// backwards. Calendar arithmetic is used so DST transitions do not shift
// the key off midnight.
func (k DateKey) AddDays(n int) DateKey {
	return Normalize(k.Time().AddDate(0, 0, n))
}

// Format renders the day as an ISO date (YYYY-MM-DD).
func (k DateKey) Format() string {
	return k.Time().Format("2006-01-02")
}

// FormatLong renders the day in a human-readable form, e.g. "Mon, Jan 2 2006".
func (k DateKey) FormatLong() string {
	return k.Time().Format("Mon, Jan 2 2006")
}

// ParseDay parses a day expression relative to the given reference day.
//
// Accepted forms:
//   - "2024-01-15"  ISO date
//   - "today"
//   - "yesterday", "tomorrow"
//   - "+N" / "-N"   N days after/before the reference day
func ParseDay(input string, ref DateKey) (DateKey, error) {
	if input == "" {
		return 0, fmt.Errorf("day cannot be empty (use YYYY-MM-DD, 'today', or +N/-N)")
	}

	switch input {
	case "today":
		return Today(), nil
	case "yesterday":
		return Today().AddDays(-1), nil
	case "tomorrow":
		return Today().AddDays(1), nil
	}

	if input[0] == '+' || input[0] == '-' {
		n, err := strconv.Atoi(input)
		if err != nil {
			return 0, fmt.Errorf("invalid day offset %q (use +N or -N, e.g. +1, -7)", input)
		}
		return ref.AddDays(n), nil
	}

	t, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q (use YYYY-MM-DD, e.g. 2024-01-15)", input)
	}
	return Normalize(t), nil
}

// StartOfWeek returns the DateKey of the first day of the week containing k.
// weekStartDay is "monday" or "sunday"; anything else defaults to monday.
func StartOfWeek(k DateKey, weekStartDay string) DateKey {
	t := k.Time()
	wd := int(t.Weekday()) // Sunday == 0

	var offset int
	if weekStartDay == "sunday" {
		offset = wd
	} else {
		offset = (wd + 6) % 7
	}
	return k.AddDays(-offset)
}
