package track

import "sort"

// Task is a named activity that can be scheduled on one or more days.
// Other components reference tasks by ID only; deleting a task does not
// cascade, so readers must tolerate IDs that no longer resolve.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

// Registry owns task records and ID assignment.
type Registry struct {
	nextID int
	tasks  map[int]Task
}

// NewRegistry returns an empty registry. IDs start at 1 so that zero can
// serve as "no task" in selection state.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		tasks:  map[int]Task{},
	}
}

// Create records a new task under the given ID and advances the next-ID
// counter to id+1. The caller is expected to pass NextID(); no uniqueness
// check is made, and a non-sequential ID still moves the counter to id+1.
func (r *Registry) Create(id int, description, taskType string) {
	r.tasks[id] = Task{ID: id, Description: description, Type: taskType}
	r.nextID = id + 1
}

// Update replaces the description of an existing task. The type is changed
// only when taskType is non-nil; a nil pointer leaves it untouched.
// No-op if the task does not exist.
func (r *Registry) Update(id int, description string, taskType *string) {
	t, ok := r.tasks[id]
	if !ok {
		return
	}
	t.Description = description
	if taskType != nil {
		t.Type = *taskType
	}
	r.tasks[id] = t
}

// Delete removes the task record. No-op if the task does not exist.
// Date indexes and the time ledger are left untouched; any remaining
// references to the ID become orphans.
func (r *Registry) Delete(id int) {
	delete(r.tasks, id)
}

// Get looks up a task by ID.
func (r *Registry) Get(id int) (Task, bool) {
	t, ok := r.tasks[id]
	return t, ok
}

// NextID returns the ID the next created task should use.
func (r *Registry) NextID() int {
	return r.nextID
}

// Len returns the number of task records.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// Tasks returns all task records ordered by ID.
func (r *Registry) Tasks() []Task {
	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
