package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/testutil"
	"github.com/runoshun/todomaster/internal/todolist"
)

func TestLoadTasks_Execute_Success(t *testing.T) {
	// Setup
	service := testutil.NewMockTaskService(
		domain.Task{ID: "1", Text: "Buy milk"},
		domain.Task{ID: "2", Text: "Walk dog", Completed: true},
	)
	cache := testutil.NewMockTaskCache(domain.Task{ID: "stale", Text: "old"})
	uc := NewLoadTasks(service, cache, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), LoadTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Offline())
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, domain.TaskID("1"), out.Tasks[0].ID)
	assert.Equal(t, 0, cache.Saves, "a successful load does not write the cache")
}

func TestLoadTasks_Execute_OfflineWithCache(t *testing.T) {
	// Setup
	service := testutil.NewMockTaskService()
	service.ListErr = domain.ErrUnavailable
	cache := testutil.NewMockTaskCache(domain.Task{ID: "1", Text: "cached"})
	uc := NewLoadTasks(service, cache, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), LoadTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Offline())
	assert.ErrorIs(t, out.RemoteErr, domain.ErrUnavailable)
	assert.True(t, out.HaveCache)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "cached", out.Tasks[0].Text)
}

func TestLoadTasks_Execute_OfflineNoCache(t *testing.T) {
	// Setup
	service := testutil.NewMockTaskService()
	service.ListErr = domain.ErrUnavailable
	uc := NewLoadTasks(service, &testutil.MockTaskCache{}, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), LoadTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Offline())
	assert.False(t, out.HaveCache)
	assert.Empty(t, out.Tasks)
}

func TestLoadTasks_Execute_OfflineCorruptCache(t *testing.T) {
	// Setup
	service := testutil.NewMockTaskService()
	service.ListErr = domain.ErrUnavailable
	cache := &testutil.MockTaskCache{LoadErr: errors.New("parse cache file: bad json")}
	logger := &testutil.MockLogger{}
	uc := NewLoadTasks(service, cache, logger)

	// Execute
	out, err := uc.Execute(context.Background(), LoadTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.HaveCache)
	assert.Empty(t, out.Tasks)
	assert.Contains(t, logger.Categories("error"), "cache")
}

func TestLoadTasks_Execute_Canceled(t *testing.T) {
	// Setup
	service := testutil.NewMockTaskService()
	service.ListErr = context.Canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc := NewLoadTasks(service, testutil.NewMockTaskCache(), &testutil.MockLogger{})

	// Execute
	_, err := uc.Execute(ctx, LoadTasksInput{})

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadTasksOutput_Apply(t *testing.T) {
	start := todolist.New().BeginLoad()
	start.Tasks = []domain.Task{{ID: "x", Text: "kept"}}

	t.Run("online replaces the list", func(t *testing.T) {
		out := &LoadTasksOutput{Tasks: []domain.Task{{ID: "1", Text: "a"}}}
		s := out.Apply(start)
		assert.False(t, s.Loading)
		assert.Empty(t, s.Notice)
		assert.Equal(t, domain.TaskID("1"), s.Tasks[0].ID)
	})

	t.Run("offline with cache uses the cache", func(t *testing.T) {
		out := &LoadTasksOutput{RemoteErr: domain.ErrUnavailable, HaveCache: true, Tasks: []domain.Task{{ID: "c"}}}
		s := out.Apply(start)
		assert.Equal(t, todolist.NoticeOffline, s.Notice)
		assert.Equal(t, domain.TaskID("c"), s.Tasks[0].ID)
	})

	t.Run("offline without cache keeps the list", func(t *testing.T) {
		out := &LoadTasksOutput{RemoteErr: domain.ErrUnavailable, Tasks: []domain.Task{}}
		s := out.Apply(start)
		assert.Equal(t, todolist.NoticeOffline, s.Notice)
		assert.Equal(t, domain.TaskID("x"), s.Tasks[0].ID)
	})
}
