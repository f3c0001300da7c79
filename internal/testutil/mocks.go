// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/todomaster/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator hands out "offline-1", "offline-2", ...
type MockIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns the next id in sequence.
func (m *MockIDGenerator) NewID() domain.TaskID {
	m.n++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "offline"
	}
	return domain.TaskID(fmt.Sprintf("%s-%d", prefix, m.n))
}

// ServiceCall records one request made against MockTaskService.
type ServiceCall struct {
	Patch  domain.TaskPatch
	Method string
	ID     domain.TaskID
	Text   string
}

// MockTaskService is an in-memory domain.TaskService.
// Setting an *Err field makes the matching method fail with it.
// Fields are ordered to minimize memory padding.
type MockTaskService struct {
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
	Tasks     []domain.Task
	Calls     []ServiceCall
	Now       time.Time
	NextIDN   int
	mu        sync.Mutex
}

// Ensure MockTaskService implements domain.TaskService.
var _ domain.TaskService = (*MockTaskService)(nil)

// NewMockTaskService creates a service holding tasks.
func NewMockTaskService(tasks ...domain.Task) *MockTaskService {
	return &MockTaskService{
		Tasks:   domain.CloneTasks(tasks),
		NextIDN: 100,
	}
}

// List returns a copy of the stored tasks.
func (m *MockTaskService) List(_ context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, ServiceCall{Method: "List"})
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return domain.CloneTasks(m.Tasks), nil
}

// Create stores a new task with the next numeric id.
func (m *MockTaskService) Create(_ context.Context, text string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, ServiceCall{Method: "Create", Text: text})
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	task := domain.Task{
		ID:        domain.TaskID(fmt.Sprintf("%d", m.NextIDN)),
		Text:      text,
		CreatedAt: m.Now,
	}
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return &task, nil
}

// Update applies patch to the stored task.
func (m *MockTaskService) Update(_ context.Context, id domain.TaskID, patch domain.TaskPatch) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, ServiceCall{Method: "Update", ID: id, Patch: patch})
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	i := domain.IndexOf(m.Tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnavailable, domain.ErrTaskNotFound)
	}
	if patch.Completed != nil {
		m.Tasks[i].Completed = *patch.Completed
	}
	if patch.Text != nil {
		m.Tasks[i].Text = *patch.Text
	}
	task := m.Tasks[i]
	return &task, nil
}

// Delete removes the stored task.
func (m *MockTaskService) Delete(_ context.Context, id domain.TaskID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, ServiceCall{Method: "Delete", ID: id})
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	i := domain.IndexOf(m.Tasks, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrUnavailable, domain.ErrTaskNotFound)
	}
	m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
	return nil
}

// FailAll makes every method fail with ErrUnavailable.
func (m *MockTaskService) FailAll() {
	m.ListErr = domain.ErrUnavailable
	m.CreateErr = domain.ErrUnavailable
	m.UpdateErr = domain.ErrUnavailable
	m.DeleteErr = domain.ErrUnavailable
}

// Methods returns the method names called so far, in order.
func (m *MockTaskService) Methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}

// MockTaskCache is an in-memory domain.TaskCache.
// Fields are ordered to minimize memory padding.
type MockTaskCache struct {
	LoadErr error
	SaveErr error
	Tasks   []domain.Task
	Saves   int
	Saved   bool
}

// Ensure MockTaskCache implements domain.TaskCache.
var _ domain.TaskCache = (*MockTaskCache)(nil)

// NewMockTaskCache creates a cache that already holds tasks.
func NewMockTaskCache(tasks ...domain.Task) *MockTaskCache {
	return &MockTaskCache{Tasks: domain.CloneTasks(tasks), Saved: true}
}

// Load returns the cached tasks.
func (m *MockTaskCache) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Saved {
		return nil, domain.ErrCacheEmpty
	}
	return domain.CloneTasks(m.Tasks), nil
}

// Save replaces the cached tasks.
func (m *MockTaskCache) Save(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = domain.CloneTasks(tasks)
	m.Saved = true
	m.Saves++
	return nil
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log messages.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("info", category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.add("warn", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }

// Categories returns the categories logged at level.
func (m *MockLogger) Categories(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Category)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}
