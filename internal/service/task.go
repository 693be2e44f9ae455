package service

import (
	"strings"

	"github.com/solrun/kvart/internal/timeutil"
	"github.com/solrun/kvart/internal/track"
)

// TaskService provides operations for managing tasks and their placement on
// the viewed day.
type TaskService struct {
	core *core
}

// Add creates a new task and puts it on the currently viewed day. The day
// entries in both the task index and the ledger are created lazily here, so
// segment toggles work immediately afterwards.
func (s *TaskService) Add(description, taskType string) (track.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return track.Task{}, ErrEmptyDescription
	}

	st := s.core.state
	date := st.SelectedDate
	st.Days.CreateDate(date)
	st.Ledger.CreateDate(date)

	id := st.Tasks.NextID()
	st.Tasks.Create(id, description, taskType)
	st.Days.AddTask(date, id)

	if err := s.core.save(); err != nil {
		return track.Task{}, err
	}
	task, _ := st.Tasks.Get(id)
	return task, nil
}

// Edit updates a task's description and, when taskType is non-nil, its type.
// An empty description keeps the existing one (partial update).
func (s *TaskService) Edit(id int, description string, taskType *string) (track.Task, error) {
	st := s.core.state
	existing, ok := st.Tasks.Get(id)
	if !ok {
		return track.Task{}, ErrTaskNotFound
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = existing.Description
	}
	st.Tasks.Update(id, description, taskType)

	if err := s.core.save(); err != nil {
		return track.Task{}, err
	}
	task, _ := st.Tasks.Get(id)
	return task, nil
}

// Delete removes the task record. References on days and in the ledger are
// deliberately left in place; readers tolerate the orphans.
func (s *TaskService) Delete(id int) (track.Task, error) {
	st := s.core.state
	task, ok := st.Tasks.Get(id)
	if !ok {
		return track.Task{}, ErrTaskNotFound
	}

	st.Tasks.Delete(id)

	if err := s.core.save(); err != nil {
		return track.Task{}, err
	}
	return task, nil
}

// Drop removes every occurrence of the task from the viewed day without
// touching the task record or its tracked time.
func (s *TaskService) Drop(id int) error {
	st := s.core.state
	st.Days.RemoveTask(st.SelectedDate, id)
	return s.core.save()
}

// Reorder replaces the viewed day's task order wholesale.
func (s *TaskService) Reorder(order []int) error {
	st := s.core.state
	st.Days.Reorder(st.SelectedDate, order)
	return s.core.save()
}

// Get resolves a task ID.
func (s *TaskService) Get(id int) (track.Task, error) {
	task, ok := s.core.state.Tasks.Get(id)
	if !ok {
		return track.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// Rows returns the viewed day's tasks in board order, with orphan
// placeholders for IDs whose record has been deleted.
func (s *TaskService) Rows() []TaskRow {
	return s.RowsForDate(s.core.state.SelectedDate)
}

// RowsForDate is Rows for an arbitrary day.
func (s *TaskService) RowsForDate(date timeutil.DateKey) []TaskRow {
	ids := s.core.state.Days.Tasks(date)
	rows := make([]TaskRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, s.core.row(id))
	}
	return rows
}
