// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
)

// LoadTasksInput contains the parameters for loading tasks.
type LoadTasksInput struct{}

// LoadTasksOutput contains the result of loading tasks.
// Fields are ordered to minimize memory padding.
type LoadTasksOutput struct {
	RemoteErr error         // Why the remote list failed (nil on success)
	Tasks     []domain.Task // Remote list, or cached list when offline
	HaveCache bool          // Offline only: the cache held a list
}

// Offline reports whether the remote list could not be fetched.
func (o *LoadTasksOutput) Offline() bool {
	return o.RemoteErr != nil
}

// Apply folds the load result into s.
func (o *LoadTasksOutput) Apply(s todolist.State) todolist.State {
	if o.Offline() {
		return s.LoadFailed(o.Tasks, o.HaveCache)
	}
	return s.Loaded(o.Tasks)
}

// LoadTasks is the use case for the startup load.
type LoadTasks struct {
	service domain.TaskService
	cache   domain.TaskCache
	logger  domain.Logger
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(service domain.TaskService, cache domain.TaskCache, logger domain.Logger) *LoadTasks {
	return &LoadTasks{
		service: service,
		cache:   cache,
		logger:  logger,
	}
}

// Execute fetches the task list, falling back to the cache when the service
// is unreachable. A remote failure is not an error of the use case; it is
// reported through RemoteErr.
func (uc *LoadTasks) Execute(ctx context.Context, _ LoadTasksInput) (*LoadTasksOutput, error) {
	tasks, err := uc.service.List(ctx)
	if err == nil {
		uc.logger.Info("load", fmt.Sprintf("loaded %d tasks", len(tasks)))
		return &LoadTasksOutput{Tasks: tasks}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	out := &LoadTasksOutput{RemoteErr: err, Tasks: []domain.Task{}}
	cached, cacheErr := uc.cache.Load()
	switch {
	case cacheErr == nil:
		out.Tasks = cached
		out.HaveCache = true
		uc.logger.Info("load", fmt.Sprintf("offline: restored %d cached tasks", len(cached)))
	case errors.Is(cacheErr, domain.ErrCacheEmpty):
		uc.logger.Info("load", "offline: no cached tasks")
	default:
		uc.logger.Error("cache", fmt.Sprintf("read cache: %v", cacheErr))
	}
	return out, nil
}
