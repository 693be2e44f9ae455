package service

import (
	"errors"
	"time"

	"github.com/solrun/kvart/internal/track"
)

// Common errors for the service layer
var (
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrSegmentOutOfRange = errors.New("segment out of range")
	ErrNoOpenInterval    = errors.New("no running timer for task")
	ErrIntervalNotFound  = errors.New("no interval with that start time")
	ErrInvalidInterval   = errors.New("interval start must be before end")
	ErrUnknownConfigKey  = errors.New("unknown config key")
)

// TaskRow is one task as it appears on a day board: the registry record if
// it still exists, or an orphan placeholder when the record was deleted
// while the ID remained on the day.
type TaskRow struct {
	ID          int
	Description string
	Type        string
	Orphan      bool
}

// TaskTotal is a task's aggregated tracked time on one day.
type TaskTotal struct {
	Row     TaskRow
	Minutes int
}

// Formatted renders the total as zero-padded HH:MM.
func (t TaskTotal) Formatted() string {
	return track.FormatHHMM(t.Minutes)
}

// FormatMinutes renders a minute count as zero-padded HH:MM.
func FormatMinutes(minutes int) string {
	return track.FormatHHMM(minutes)
}

// OpenTimer describes a still-running interval on the viewed day.
type OpenTimer struct {
	Row     TaskRow
	Start   time.Time
	Elapsed time.Duration
}
