package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/testutil"
)

func TestClearCompleted_Execute(t *testing.T) {
	// Setup
	cache := testutil.NewMockTaskCache()
	logger := &testutil.MockLogger{}
	uc := NewClearCompleted(NewSaveTasks(cache, logger), logger)
	state := stateOf(
		domain.Task{ID: "1", Text: "a", Completed: true},
		domain.Task{ID: "2", Text: "b"},
		domain.Task{ID: "3", Text: "c", Completed: true},
		domain.Task{ID: "4", Text: "d"},
	)

	// Execute
	out, err := uc.Execute(context.Background(), ClearCompletedInput{State: state})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Removed)
	require.Len(t, out.State.Tasks, 2)
	assert.Equal(t, domain.TaskID("2"), out.State.Tasks[0].ID)
	assert.Equal(t, domain.TaskID("4"), out.State.Tasks[1].ID)
	assert.Equal(t, out.State.Tasks, cache.Tasks)
	assert.Equal(t, 1, cache.Saves)
}

func TestClearCompleted_Execute_NothingCompleted(t *testing.T) {
	cache := testutil.NewMockTaskCache()
	uc := NewClearCompleted(NewSaveTasks(cache, domain.NopLogger{}), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), ClearCompletedInput{State: stateOf(domain.Task{ID: "1", Text: "a"})})

	require.NoError(t, err)
	assert.Zero(t, out.Removed)
	assert.Equal(t, 1, cache.Saves, "the list is persisted even when unchanged")
}

func TestClearCompleted_Execute_SaveError(t *testing.T) {
	cache := &testutil.MockTaskCache{SaveErr: errors.New("read-only")}
	uc := NewClearCompleted(NewSaveTasks(cache, domain.NopLogger{}), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), ClearCompletedInput{State: stateOf()})

	assert.Error(t, err)
}
