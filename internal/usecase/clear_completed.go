package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
)

// ClearCompletedInput contains the state to clear.
type ClearCompletedInput struct {
	State todolist.State
}

// ClearCompletedOutput contains the state after clearing.
type ClearCompletedOutput struct {
	State   todolist.State
	Removed int
}

// ClearCompleted removes completed tasks locally and persists the result.
// The remote service is not contacted, so cleared tasks come back on the
// next successful load.
type ClearCompleted struct {
	save   *SaveTasks
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(save *SaveTasks, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		save:   save,
		logger: logger,
	}
}

// Execute clears and persists.
func (uc *ClearCompleted) Execute(ctx context.Context, in ClearCompletedInput) (*ClearCompletedOutput, error) {
	state := in.State.ClearCompleted()
	removed := len(in.State.Tasks) - len(state.Tasks)

	if _, err := uc.save.Execute(ctx, SaveTasksInput{Tasks: state.Tasks}); err != nil {
		return nil, err
	}
	uc.logger.Info("clear", fmt.Sprintf("cleared %d completed tasks", removed))

	return &ClearCompletedOutput{State: state, Removed: removed}, nil
}
