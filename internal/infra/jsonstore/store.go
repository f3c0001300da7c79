// Package jsonstore provides a JSON file-based implementation of TaskCache.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/runoshun/todomaster/internal/domain"
)

// Store implements domain.TaskCache using one JSON file per slot.
// The file holds the bare JSON array of tasks.
type Store struct {
	path     string
	lockPath string
	mu       sync.Mutex
}

// New creates a new Store for the given slot inside dir.
// The file does not need to exist; it will be created on first write.
func New(dir, slot string) *Store {
	return NewAtPath(domain.CacheSlotPath(dir, slot))
}

// NewAtPath creates a new Store backed by the given file.
func NewAtPath(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the file backing the slot.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached tasks.
// Returns domain.ErrCacheEmpty if the slot has never been written.
func (s *Store) Load() ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	return s.read()
}

// Save replaces the cached tasks.
func (s *Store) Save(tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	if tasks == nil {
		tasks = []domain.Task{}
	}
	return s.write(tasks)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() ([]domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrCacheEmpty
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("parse cache file: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *Store) write(tasks []domain.Task) error {
	content, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskCache.
var _ domain.TaskCache = (*Store)(nil)
