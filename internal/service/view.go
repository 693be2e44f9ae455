package service

import (
	"github.com/solrun/kvart/internal/timeutil"
	"github.com/solrun/kvart/internal/track"
)

// ViewService owns the view state: the selected day and the keyboard
// selection / inline-edit state.
type ViewService struct {
	core *core
}

// Selected returns the currently viewed day.
func (s *ViewService) Selected() timeutil.DateKey {
	return s.core.state.SelectedDate
}

// Select switches the view to the given day. The day entries are created
// lazily on first reference so subsequent writes have somewhere to land.
func (s *ViewService) Select(date timeutil.DateKey) error {
	st := s.core.state
	st.SelectedDate = date
	st.Days.CreateDate(date)
	st.Ledger.CreateDate(date)
	st.Edit.Reset()
	return s.core.save()
}

// Shift moves the view n days forward (negative n moves backward).
func (s *ViewService) Shift(n int) error {
	return s.Select(s.core.state.SelectedDate.AddDays(n))
}

// DatesWithTasks returns every day that has at least one task, in date
// order.
func (s *ViewService) DatesWithTasks() []track.DateEntry {
	return s.core.state.Days.DatesWithTasks()
}

// Selection returns the current keyboard selection.
func (s *ViewService) Selection() track.Selection {
	return s.core.state.Edit.Selection
}

// SetSelection replaces the keyboard selection.
func (s *ViewService) SetSelection(sel track.Selection) error {
	s.core.state.Edit.Selection = sel
	return s.core.save()
}

// Editing returns the ID of the task in inline-edit mode, or 0.
func (s *ViewService) Editing() int {
	return s.core.state.Edit.EditingTask
}

// SetEditing marks a task as being inline-edited.
func (s *ViewService) SetEditing(taskID int) error {
	s.core.state.Edit.EditingTask = taskID
	return s.core.save()
}

// ClearEdit resets selection and edit mode, as on Escape.
func (s *ViewService) ClearEdit() error {
	s.core.state.Edit.Reset()
	return s.core.save()
}
