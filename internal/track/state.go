package track

import (
	"github.com/solrun/kvart/internal/timeutil"
)

// State is the explicit container for all tracked data: the task registry,
// the per-day task index, the time ledger, the selection/edit state, and the
// currently viewed day. It is passed by handle to the service layer; there
// are no package-level globals.
type State struct {
	Version      string
	SelectedDate timeutil.DateKey
	Tasks        *Registry
	Days         *DateIndex
	Ledger       *Ledger
	Edit         EditState
}

// NewState builds a state container. A nil snapshot yields a fresh state
// viewing today; otherwise the snapshot is restored field by field through
// the same operations external callers use, so restored data obeys the same
// invariants as live data.
func NewState(version string, snap *Snapshot) *State {
	s := &State{
		Version:      version,
		SelectedDate: timeutil.Today(),
		Tasks:        NewRegistry(),
		Days:         NewDateIndex(),
		Ledger:       NewLedger(),
	}
	if snap == nil {
		return s
	}

	if snap.App.SelectedDate != 0 {
		s.SelectedDate = timeutil.DateKey(snap.App.SelectedDate)
	}

	for _, t := range snap.Task.Tasks {
		s.Tasks.Create(t.ID, t.Description, t.Type)
	}
	// The persisted counter wins over the replay-derived one: tasks may have
	// been deleted after the counter advanced past their IDs.
	if snap.Task.NextTaskID > 0 {
		s.Tasks.nextID = snap.Task.NextTaskID
	}

	for _, d := range snap.Date.DateTasks {
		date := timeutil.DateKey(d.Date)
		s.Days.CreateDate(date)
		for _, id := range d.Tasks {
			s.Days.AddTask(date, id)
		}
	}

	for _, d := range snap.Time.DateTimes {
		date := timeutil.DateKey(d.Date)
		s.Ledger.CreateDate(date)
		for _, t := range d.TaskTimes {
			s.Ledger.Record(date, t.Task, t.Start, t.End)
		}
	}

	s.Edit = snap.Edit.EditState

	return s
}

// Snapshot captures the full state in the persisted layout.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		App: AppSnapshot{
			Version:      s.Version,
			SelectedDate: int64(s.SelectedDate),
		},
		Task: TaskSnapshot{
			NextTaskID: s.Tasks.NextID(),
			Tasks:      s.Tasks.Tasks(),
		},
		Edit: EditSnapshot{EditState: s.Edit},
	}

	for _, e := range s.Days.Entries() {
		snap.Date.DateTasks = append(snap.Date.DateTasks, DateTasksSnapshot{
			Date:  int64(e.Date),
			Tasks: e.Tasks,
		})
	}

	for _, e := range s.Ledger.Entries() {
		snap.Time.DateTimes = append(snap.Time.DateTimes, DateTimesSnapshot{
			Date:      int64(e.Date),
			TaskTimes: e.TaskTimes,
		})
	}

	return snap
}
