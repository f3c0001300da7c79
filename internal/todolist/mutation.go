package todolist

import (
	"time"

	"github.com/runoshun/todomaster/internal/domain"
)

// Op identifies the remote request behind a Pending mutation.
type Op int

const (
	OpCreate Op = iota // POST a new task
	OpToggle           // PUT {completed}
	OpEdit             // PUT {text}
	OpDelete           // DELETE
)

// String returns the operation name used in logs.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "add"
	case OpToggle:
		return "toggle"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Pending is a remote request started by a Begin transition.
// Fields are ordered to minimize memory padding.
type Pending struct {
	Provisional domain.Task   // OpCreate: appended if the request fails
	Rollback    []domain.Task // OpDelete: restored if the request fails
	ID          domain.TaskID // Target task (OpCreate: the placeholder id)
	Text        string        // OpCreate, OpEdit: trimmed text sent
	Op          Op
	Completed   bool // OpToggle: value sent
}

// Patch returns the partial update body for OpToggle and OpEdit.
func (p Pending) Patch() domain.TaskPatch {
	switch p.Op {
	case OpToggle:
		completed := p.Completed
		return domain.TaskPatch{Completed: &completed}
	case OpEdit:
		text := p.Text
		return domain.TaskPatch{Text: &text}
	case OpCreate, OpDelete:
	}
	return domain.TaskPatch{}
}

// Response is what the remote service answered to a Pending request.
type Response struct {
	Task *domain.Task // Record returned on create/update success
	Err  error        // Any failure; all failures are handled alike
}

// Outcome tells the caller what to do after Settle.
type Outcome struct {
	Persist bool // Write State.Tasks to the cache
	Offline bool // The request failed and the fallback path was taken
}

// BeginAdd starts creating a task. It returns a nil Pending when the trimmed
// text is empty, in which case the state is returned untouched.
// placeholder and now build the record used if the request fails.
func (s State) BeginAdd(text string, placeholder domain.TaskID, now time.Time) (State, *Pending) {
	trimmed, err := domain.NormalizeText(text)
	if err != nil {
		return s, nil
	}
	return s, &Pending{
		Op:   OpCreate,
		ID:   placeholder,
		Text: trimmed,
		Provisional: domain.Task{
			ID:        placeholder,
			Text:      trimmed,
			Completed: false,
			CreatedAt: now,
		},
	}
}

// BeginToggle flips a task's completed flag immediately.
// Unknown ids are a no-op.
func (s State) BeginToggle(id domain.TaskID) (State, *Pending) {
	i := domain.IndexOf(s.Tasks, id)
	if i < 0 {
		return s, nil
	}
	tasks := domain.CloneTasks(s.Tasks)
	tasks[i].Completed = !tasks[i].Completed
	s.Tasks = tasks
	return s, &Pending{
		Op:        OpToggle,
		ID:        id,
		Completed: tasks[i].Completed,
	}
}

// BeginEdit applies new text immediately. Empty trimmed text is a no-op and
// keeps edit mode. An unknown id leaves edit mode and sends nothing.
func (s State) BeginEdit(id domain.TaskID, text string) (State, *Pending) {
	trimmed, err := domain.NormalizeText(text)
	if err != nil {
		return s, nil
	}
	i := domain.IndexOf(s.Tasks, id)
	if i < 0 {
		return s.CancelEdit(), nil
	}
	tasks := domain.CloneTasks(s.Tasks)
	tasks[i].Text = trimmed
	s.Tasks = tasks
	return s, &Pending{
		Op:   OpEdit,
		ID:   id,
		Text: trimmed,
	}
}

// BeginDelete removes a task immediately and remembers the list as it was.
// Unknown ids are a no-op.
func (s State) BeginDelete(id domain.TaskID) (State, *Pending) {
	i := domain.IndexOf(s.Tasks, id)
	if i < 0 {
		return s, nil
	}
	rollback := domain.CloneTasks(s.Tasks)
	tasks := make([]domain.Task, 0, len(s.Tasks)-1)
	tasks = append(tasks, s.Tasks[:i]...)
	tasks = append(tasks, s.Tasks[i+1:]...)
	s.Tasks = tasks
	return s, &Pending{
		Op:       OpDelete,
		ID:       id,
		Rollback: rollback,
	}
}

// Settle folds a remote response into the current state.
//
// Create, toggle and edit never roll back: on failure the optimistic list is
// kept and persisted. Delete is the exception and restores its snapshot
// without touching the cache.
func (s State) Settle(p Pending, r Response) (State, Outcome) {
	failed := r.Err != nil || (p.Op != OpDelete && r.Task == nil)

	switch p.Op {
	case OpCreate:
		tasks := domain.CloneTasks(s.Tasks)
		if failed {
			tasks = append(tasks, p.Provisional)
			s.Notice = NoticeAddedOffline
		} else {
			tasks = append(tasks, *r.Task)
			s.Notice = ""
		}
		s.Tasks = tasks
		s.Input = ""
		return s, Outcome{Persist: true, Offline: failed}

	case OpToggle, OpEdit:
		if failed {
			s.Notice = NoticeUpdatedOffline
		} else {
			s.Tasks = replace(s.Tasks, p.ID, *r.Task)
			s.Notice = ""
		}
		if p.Op == OpEdit {
			s = s.CancelEdit()
		}
		return s, Outcome{Persist: true, Offline: failed}

	case OpDelete:
		if failed {
			s.Tasks = domain.CloneTasks(p.Rollback)
			s.Notice = NoticeDeleteFailed
			return s, Outcome{Persist: false, Offline: true}
		}
		s.Notice = ""
		return s, Outcome{Persist: true}
	}

	return s, Outcome{}
}

// replace swaps the record at id for updated. A task removed while the
// request was in flight is not brought back.
func replace(tasks []domain.Task, id domain.TaskID, updated domain.Task) []domain.Task {
	out := domain.CloneTasks(tasks)
	if i := domain.IndexOf(out, id); i >= 0 {
		out[i] = updated
	}
	return out
}
