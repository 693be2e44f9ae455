package track

// SelectionKind says what part of a task row is keyboard-selected.
type SelectionKind int

const (
	// SelectionNone means nothing is selected.
	SelectionNone SelectionKind = iota
	// SelectionDescription selects a task's description cell.
	SelectionDescription
	// SelectionSegment selects one time segment of a task's row.
	SelectionSegment
)

// Selection is the single process-wide keyboard selection: either a task's
// description or one of its segments. The zero value means no selection.
type Selection struct {
	Kind    SelectionKind `json:"kind"`
	TaskID  int           `json:"taskId,omitempty"`
	Segment int           `json:"segment,omitempty"`
}

// SelectDescription returns a selection of the task's description cell.
func SelectDescription(taskID int) Selection {
	return Selection{Kind: SelectionDescription, TaskID: taskID}
}

// SelectSegment returns a selection of one segment in the task's row.
func SelectSegment(taskID, segment int) Selection {
	return Selection{Kind: SelectionSegment, TaskID: taskID, Segment: segment}
}

// Active reports whether anything is selected.
func (s Selection) Active() bool {
	return s.Kind != SelectionNone
}

// EditState tracks the keyboard selection and which task, if any, is in
// inline-edit mode. Cleared on Escape or when an edit completes. It is
// carried in the snapshot for interface completeness but nothing depends on
// it surviving a reload.
type EditState struct {
	Selection   Selection `json:"selection"`
	EditingTask int       `json:"editingTask,omitempty"`
}

// Reset clears the selection and any in-progress edit.
func (e *EditState) Reset() {
	*e = EditState{}
}
