package track

// Snapshot is the serialized form of the whole state: a keyed bundle with
// one section per component, written after every mutation and restored at
// startup. Dates are epoch milliseconds at local midnight throughout.
type Snapshot struct {
	App  AppSnapshot  `json:"app"`
	Task TaskSnapshot `json:"task"`
	Date DateSnapshot `json:"date"`
	Time TimeSnapshot `json:"time"`
	Edit EditSnapshot `json:"edit"`
}

// AppSnapshot holds app-level state: the snapshot format version and the
// day being viewed.
type AppSnapshot struct {
	Version      string `json:"version"`
	SelectedDate int64  `json:"selectedDate"`
}

// TaskSnapshot holds the task registry.
type TaskSnapshot struct {
	NextTaskID int    `json:"nextTaskId"`
	Tasks      []Task `json:"tasks"`
}

// DateSnapshot holds the per-day task lists.
type DateSnapshot struct {
	DateTasks []DateTasksSnapshot `json:"dateTasks"`
}

// DateTasksSnapshot is one day's ordered task IDs.
type DateTasksSnapshot struct {
	Date  int64 `json:"date"`
	Tasks []int `json:"tasks"`
}

// TimeSnapshot holds the time ledger.
type TimeSnapshot struct {
	DateTimes []DateTimesSnapshot `json:"dateTimes"`
}

// DateTimesSnapshot is one day's recorded intervals.
type DateTimesSnapshot struct {
	Date      int64      `json:"date"`
	TaskTimes []TaskTime `json:"taskTimes"`
}

// EditSnapshot carries the transient selection state. It is persisted for
// layout completeness only.
type EditSnapshot struct {
	EditState EditState `json:"editState"`
}
