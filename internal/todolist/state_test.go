package todolist

import (
	"testing"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	assert.NotNil(t, s.Tasks)
	assert.Empty(t, s.Tasks)
	assert.Equal(t, domain.FilterAll, s.Filter)
	assert.False(t, s.Loading)
}

func TestVisible(t *testing.T) {
	s := stateWith(
		domain.Task{ID: "1", Completed: false},
		domain.Task{ID: "2", Completed: true},
		domain.Task{ID: "3", Completed: false},
		domain.Task{ID: "4", Completed: true},
	)

	tests := []struct {
		filter domain.Filter
		want   []domain.TaskID
	}{
		{filter: domain.FilterAll, want: []domain.TaskID{"1", "2", "3", "4"}},
		{filter: domain.FilterActive, want: []domain.TaskID{"1", "3"}},
		{filter: domain.FilterCompleted, want: []domain.TaskID{"2", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := s.WithFilter(tt.filter).Visible()
			assert.Equal(t, tt.want, ids(got))
			for _, task := range got {
				assert.True(t, tt.filter.Matches(task))
			}
		})
	}
}

func TestWithFilter_HasNoOtherEffect(t *testing.T) {
	s := stateWith(domain.Task{ID: "1"})
	s.Notice = NoticeOffline

	got := s.WithFilter(domain.FilterCompleted)

	assert.Equal(t, s.Tasks, got.Tasks)
	assert.Equal(t, s.Notice, got.Notice)
}

func TestStats(t *testing.T) {
	s := stateWith(domain.Task{ID: "1", Completed: true}, domain.Task{ID: "2"}).WithFilter(domain.FilterCompleted)
	assert.Equal(t, domain.Stats{Total: 2, Active: 1, Completed: 1}, s.Stats())
}

func TestClearCompleted(t *testing.T) {
	s := stateWith(
		domain.Task{ID: "1", Completed: true},
		domain.Task{ID: "2"},
		domain.Task{ID: "3", Completed: true},
		domain.Task{ID: "4"},
	)

	got := s.ClearCompleted()

	assert.Equal(t, []domain.TaskID{"2", "4"}, ids(got.Tasks))
	assert.Len(t, s.Tasks, 4, "receiver is not mutated")
}

func TestClearCompleted_Empty(t *testing.T) {
	got := New().ClearCompleted()
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)
}

func TestLoad_Success(t *testing.T) {
	s := New().BeginLoad()
	s.Notice = NoticeAddedOffline
	assert.True(t, s.Loading)

	server := []domain.Task{{ID: "1", Text: "a"}}
	s = s.Loaded(server)

	assert.Equal(t, server, s.Tasks)
	assert.Empty(t, s.Notice)
	assert.False(t, s.Loading)
}

func TestLoad_FailureUsesCache(t *testing.T) {
	cached := []domain.Task{{ID: "1", Text: "cached"}}

	s := New().BeginLoad().LoadFailed(cached, true)

	assert.Equal(t, cached, s.Tasks)
	assert.Equal(t, NoticeOffline, s.Notice)
	assert.False(t, s.Loading)
}

func TestLoad_FailureWithoutCacheLeavesList(t *testing.T) {
	s := New().BeginLoad().LoadFailed(nil, false)

	assert.Empty(t, s.Tasks)
	assert.Equal(t, NoticeOffline, s.Notice)
}

func TestFind(t *testing.T) {
	s := stateWith(domain.Task{ID: "1", Text: "a"})

	task, ok := s.Find("1")
	assert.True(t, ok)
	assert.Equal(t, "a", task.Text)

	_, ok = s.Find("2")
	assert.False(t, ok)
}

func TestNotice_OverwrittenAndClearedBySuccess(t *testing.T) {
	s := stateWith(domain.Task{ID: "1"}, domain.Task{ID: "2"})

	s, p := s.BeginDelete("1")
	s, _ = s.Settle(*p, Response{Err: errOffline})
	assert.Equal(t, NoticeDeleteFailed, s.Notice)

	s, p = s.BeginToggle("2")
	s, _ = s.Settle(*p, Response{Err: errOffline})
	assert.Equal(t, NoticeUpdatedOffline, s.Notice, "latest outcome replaces the previous notice")

	s, p = s.BeginToggle("2")
	task, _ := s.Find("2")
	s, _ = s.Settle(*p, Response{Task: &task})
	assert.Empty(t, s.Notice)
}
