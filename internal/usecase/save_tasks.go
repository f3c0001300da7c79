package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todomaster/internal/domain"
)

// SaveTasksInput contains the list to persist.
type SaveTasksInput struct {
	Tasks []domain.Task
}

// SaveTasksOutput contains the result of persisting.
type SaveTasksOutput struct{}

// SaveTasks overwrites the local cache with the full list.
type SaveTasks struct {
	cache  domain.TaskCache
	logger domain.Logger
}

// NewSaveTasks creates a new SaveTasks use case.
func NewSaveTasks(cache domain.TaskCache, logger domain.Logger) *SaveTasks {
	return &SaveTasks{
		cache:  cache,
		logger: logger,
	}
}

// Execute writes the cache.
func (uc *SaveTasks) Execute(_ context.Context, in SaveTasksInput) (*SaveTasksOutput, error) {
	if err := uc.cache.Save(in.Tasks); err != nil {
		uc.logger.Error("cache", fmt.Sprintf("write cache: %v", err))
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	uc.logger.Debug("cache", fmt.Sprintf("saved %d tasks", len(in.Tasks)))
	return &SaveTasksOutput{}, nil
}
