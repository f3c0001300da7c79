// Package todolist holds the task list state and the transitions that drive it.
//
// Every function here is pure: it takes a State and returns a new State without
// touching the receiver's slices. Remote requests and cache writes happen
// elsewhere; a mutating operation is split into a Begin step (the optimistic
// change plus a Pending describing the request) and Settle (folding the
// response back in).
package todolist

import (
	"github.com/runoshun/todomaster/internal/domain"
)

// Notices shown to the user.
const (
	NoticeOffline        = "Unable to connect to server. Working in offline mode."
	NoticeAddedOffline   = "Added offline - will sync when connected"
	NoticeUpdatedOffline = "Updated offline - will sync when connected"
	NoticeDeleteFailed   = "Failed to delete - please try again"
)

// State is everything the task list controller owns.
// Fields are ordered to minimize memory padding.
type State struct {
	Tasks     []domain.Task // Ordered by insertion
	Filter    domain.Filter // Current view filter
	Input     string        // New-task input buffer
	EditingID domain.TaskID // Task being edited (empty = none)
	EditText  string        // Edit buffer
	Notice    string        // Single current notice (empty = none)
	Loading   bool          // Set only while the list is being loaded
}

// New returns an empty State showing all tasks.
func New() State {
	return State{
		Tasks:  []domain.Task{},
		Filter: domain.FilterAll,
	}
}

// Visible returns the tasks that match the current filter, in list order.
func (s State) Visible() []domain.Task {
	out := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if s.Filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats returns counts over the whole list, ignoring the filter.
func (s State) Stats() domain.Stats {
	return domain.CountTasks(s.Tasks)
}

// Find returns the task with the given id.
func (s State) Find(id domain.TaskID) (domain.Task, bool) {
	i := domain.IndexOf(s.Tasks, id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.Tasks[i], true
}

// IsEditing reports whether an edit is in progress.
func (s State) IsEditing() bool {
	return s.EditingID != ""
}

// WithFilter changes the view filter.
func (s State) WithFilter(f domain.Filter) State {
	s.Filter = f
	return s
}

// WithInput replaces the new-task input buffer.
func (s State) WithInput(text string) State {
	s.Input = text
	return s
}

// WithEditText replaces the edit buffer.
func (s State) WithEditText(text string) State {
	s.EditText = text
	return s
}

// StartEdit enters edit mode for a task, seeding the buffer with its text.
// Unknown ids leave the state unchanged.
func (s State) StartEdit(id domain.TaskID) State {
	t, ok := s.Find(id)
	if !ok {
		return s
	}
	s.EditingID = id
	s.EditText = t.Text
	return s
}

// CancelEdit leaves edit mode without sending anything.
func (s State) CancelEdit() State {
	s.EditingID = ""
	s.EditText = ""
	return s
}

// ClearCompleted drops every completed task, keeping the rest in order.
// It is local only; the caller persists the result. The server is not told.
func (s State) ClearCompleted() State {
	kept := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	s.Tasks = kept
	return s
}

// BeginLoad marks the list as loading.
func (s State) BeginLoad() State {
	s.Loading = true
	return s
}

// Loaded replaces the list with the server's copy and clears the notice.
func (s State) Loaded(tasks []domain.Task) State {
	s.Tasks = domain.CloneTasks(tasks)
	s.Notice = ""
	s.Loading = false
	return s
}

// LoadFailed switches to offline mode. When a cached list is available it
// replaces the in-memory list; otherwise the list is left as it was.
func (s State) LoadFailed(cached []domain.Task, haveCache bool) State {
	if haveCache {
		s.Tasks = domain.CloneTasks(cached)
	}
	s.Notice = NoticeOffline
	s.Loading = false
	return s
}
