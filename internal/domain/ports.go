package domain

import (
	"context"
	"time"
)

// TaskService is the remote task store.
// Every failure (transport, non-2xx status, malformed body) is reported as an
// error wrapping ErrUnavailable.
type TaskService interface {
	// List returns every task in server order.
	List(ctx context.Context) ([]Task, error)

	// Create creates a task with the given text and returns the stored record.
	Create(ctx context.Context, text string) (*Task, error)

	// Update applies a partial update and returns the stored record.
	Update(ctx context.Context, id TaskID, patch TaskPatch) (*Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id TaskID) error
}

// TaskPatch is a partial update. Nil fields are left unchanged and omitted from the request.
type TaskPatch struct {
	Completed *bool   `json:"completed,omitempty"`
	Text      *string `json:"text,omitempty"`
}

// TaskCache is the local offline copy of the task list.
// It holds a single slot that is always overwritten wholesale.
type TaskCache interface {
	// Load returns the cached tasks. Returns ErrCacheEmpty if nothing was saved yet.
	Load() ([]Task, error)

	// Save replaces the cached tasks.
	Save(tasks []Task) error
}

// IDGenerator produces placeholder ids for tasks created offline.
type IDGenerator interface {
	NewID() TaskID
}

// Logger records diagnostic messages by category.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

// Info implements Logger.
func (NopLogger) Info(string, string) {}

// Debug implements Logger.
func (NopLogger) Debug(string, string) {}

// Warn implements Logger.
func (NopLogger) Warn(string, string) {}

// Error implements Logger.
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + explicit file).
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
