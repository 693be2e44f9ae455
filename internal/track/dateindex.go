package track

import (
	"sort"

	"github.com/solrun/kvart/internal/timeutil"
)

// DateEntry pairs a day with the ordered task IDs visible on it.
type DateEntry struct {
	Date  timeutil.DateKey `json:"date"`
	Tasks []int            `json:"tasks"`
}

// DateIndex maps calendar days to the ordered list of task IDs shown on
// each day. Entries are created lazily; every operation against a missing
// day is a silent no-op (writes) or yields an empty result (reads).
type DateIndex struct {
	days map[timeutil.DateKey][]int
}

// NewDateIndex returns an empty index.
func NewDateIndex() *DateIndex {
	return &DateIndex{days: map[timeutil.DateKey][]int{}}
}

// CreateDate ensures an entry exists for the given day. Idempotent: an
// existing entry, including its task list, is left untouched.
func (x *DateIndex) CreateDate(date timeutil.DateKey) {
	if _, ok := x.days[date]; !ok {
		x.days[date] = []int{}
	}
}

// HasDate reports whether an entry exists for the given day.
func (x *DateIndex) HasDate(date timeutil.DateKey) bool {
	_, ok := x.days[date]
	return ok
}

// AddTask appends a task ID to the day's list. Duplicates are allowed.
// No-op if the day has no entry; callers create the day first.
func (x *DateIndex) AddTask(date timeutil.DateKey, taskID int) {
	tasks, ok := x.days[date]
	if !ok {
		return
	}
	x.days[date] = append(tasks, taskID)
}

// RemoveTask removes every occurrence of the task ID from the day's list.
func (x *DateIndex) RemoveTask(date timeutil.DateKey, taskID int) {
	tasks, ok := x.days[date]
	if !ok {
		return
	}
	kept := tasks[:0]
	for _, id := range tasks {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	x.days[date] = kept
}

// Reorder replaces the day's task list wholesale with newOrder. The caller
// is responsible for passing a permutation of the existing list; no
// validation is performed. No-op if the day has no entry.
func (x *DateIndex) Reorder(date timeutil.DateKey, newOrder []int) {
	if _, ok := x.days[date]; !ok {
		return
	}
	x.days[date] = append([]int(nil), newOrder...)
}

// Tasks returns a copy of the day's ordered task IDs, or an empty slice if
// the day has no entry.
func (x *DateIndex) Tasks(date timeutil.DateKey) []int {
	tasks, ok := x.days[date]
	if !ok {
		return []int{}
	}
	return append([]int{}, tasks...)
}

// DatesWithTasks returns every entry whose task list is non-empty, ordered
// by date.
func (x *DateIndex) DatesWithTasks() []DateEntry {
	out := make([]DateEntry, 0, len(x.days))
	for date, tasks := range x.days {
		if len(tasks) == 0 {
			continue
		}
		out = append(out, DateEntry{Date: date, Tasks: append([]int{}, tasks...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Entries returns every entry, including days with empty task lists,
// ordered by date. Used when snapshotting state for persistence.
func (x *DateIndex) Entries() []DateEntry {
	out := make([]DateEntry, 0, len(x.days))
	for date, tasks := range x.days {
		out = append(out, DateEntry{Date: date, Tasks: append([]int{}, tasks...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
