// Package domain contains core business entities and interfaces.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TaskID is an opaque task identifier.
// The remote service may hand out numeric or string ids; both are kept as text.
type TaskID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode task id: %w", err)
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

// String returns the id as text.
func (id TaskID) String() string {
	return string(id)
}

// Task is a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"` // Creation time (client-side when created offline)
	ID        TaskID    `json:"id" yaml:"id"`               // Server-assigned id, or a local placeholder
	Text      string    `json:"text" yaml:"text"`           // Title (required, trimmed)
	Completed bool      `json:"completed" yaml:"completed"` // Done flag
}

// NormalizeText trims surrounding whitespace from task text.
// It returns ErrEmptyText if nothing is left.
func NormalizeText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}

// CloneTasks returns a shallow copy of tasks so callers can mutate the slice freely.
// A nil input yields an empty, non-nil slice.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id TaskID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"       // Every task
	FilterActive    Filter = "active"    // Tasks not yet completed
	FilterCompleted Filter = "completed" // Completed tasks
)

// AllFilters returns the filters in display order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter converts a string to a Filter.
// An empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Matches reports whether the task is visible under the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterAll:
		return true
	}
	return true
}

// Next returns the filter that follows f in display order.
func (f Filter) Next() Filter {
	filters := AllFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Stats summarizes a task list.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// CountTasks computes Stats for tasks.
func CountTasks(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}
