package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
)

func cliTasks() []domain.Task {
	return []domain.Task{
		{ID: "a1", Text: "Buy milk", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "a2", Text: "Walk dog", Completed: true, CreatedAt: testNow.Add(-3 * 24 * time.Hour)},
		{ID: "b7", Text: "Write report", CreatedAt: testNow.Add(-30 * time.Second)},
	}
}

func TestResolveID(t *testing.T) {
	tasks := cliTasks()
	tests := []struct {
		name    string
		arg     string
		want    domain.TaskID
		wantErr error
	}{
		{name: "exact", arg: "a1", want: "a1"},
		{name: "unique prefix", arg: "b", want: "b7"},
		{name: "ambiguous prefix", arg: "a", wantErr: domain.ErrAmbiguousID},
		{name: "no match", arg: "zz", wantErr: domain.ErrTaskNotFound},
		{name: "blank", arg: "  ", wantErr: domain.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID(tasks, tt.arg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		want string
		d    time.Duration
	}{
		{want: "0s", d: -time.Second},
		{want: "45s", d: 45 * time.Second},
		{want: "5m", d: 5 * time.Minute},
		{want: "3h", d: 3 * time.Hour},
		{want: "2d", d: 49 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestListCommand_Table(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("list")

	require.NoError(t, err)
	out := h.stdout.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TEXT")
	assert.Regexp(t, `a1\s+\[ \]\s+2h\s+Buy milk`, out)
	assert.Regexp(t, `a2\s+\[x\]\s+3d\s+Walk dog`, out)
	assert.Regexp(t, `b7\s+\[ \]\s+30s\s+Write report`, out)
	assert.Contains(t, out, "3 tasks, 2 active, 1 completed")
	assert.Empty(t, h.stderr.String())
}

func TestListCommand_Filter(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("ls", "--filter", "completed")

	require.NoError(t, err)
	out := h.stdout.String()
	assert.Contains(t, out, "Walk dog")
	assert.NotContains(t, out, "Buy milk")
	// Counts ignore the filter.
	assert.Contains(t, out, "3 tasks, 2 active, 1 completed")
}

func TestListCommand_JSON(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("list", "-f", "active", "-o", "json")

	require.NoError(t, err)
	var got []domain.Task
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, domain.TaskID("a1"), got[0].ID)
	assert.Equal(t, domain.TaskID("b7"), got[1].ID)
}

func TestListCommand_YAML(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("list", "--format", "yaml")

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(h.stdout.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Walk dog", got[1]["text"])
	assert.Equal(t, true, got[1]["completed"])
}

func TestListCommand_InvalidFlags(t *testing.T) {
	t.Run("filter", func(t *testing.T) {
		h := newHarness()
		err := h.run("list", "--filter", "someday")
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("format", func(t *testing.T) {
		h := newHarness()
		err := h.run("list", "--format", "xml")
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	})
}

func TestListCommand_Offline(t *testing.T) {
	h := newHarness()
	h.service.FailAll()
	h.cache.Tasks = cliTasks()[:1]
	h.cache.Saved = true

	err := h.run("list")

	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "Buy milk")
	assert.Contains(t, h.stderr.String(), todolist.NoticeOffline)
}

func TestAddCommand(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		h := newHarness(cliTasks()...)

		err := h.run("add", " Call", "mom ")

		require.NoError(t, err)
		assert.Equal(t, "Added task 100: Call mom\n", h.stdout.String())
		assert.Len(t, h.cache.Tasks, 4)
		assert.Equal(t, 1, h.cache.Saves)
	})

	t.Run("offline", func(t *testing.T) {
		h := newHarness()
		h.service.FailAll()

		err := h.run("add", "Call mom")

		require.NoError(t, err)
		assert.Equal(t, "Added task offline-1: Call mom\n", h.stdout.String())
		assert.Contains(t, h.stderr.String(), todolist.NoticeAddedOffline)
		require.Len(t, h.cache.Tasks, 1)
		assert.Equal(t, testNow, h.cache.Tasks[0].CreatedAt)
	})

	t.Run("blank text", func(t *testing.T) {
		h := newHarness()

		err := h.run("add", "   ")

		assert.ErrorIs(t, err, domain.ErrEmptyText)
		assert.Empty(t, h.service.Calls)
	})
}

func TestToggleCommand(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("toggle", "b")

	require.NoError(t, err)
	assert.Equal(t, "Task b7 marked completed\n", h.stdout.String())
	require.Len(t, h.cache.Tasks, 3)
	assert.True(t, h.cache.Tasks[2].Completed)

	h.stdout.Reset()
	require.NoError(t, h.run("toggle", "a2"))
	assert.Equal(t, "Task a2 marked active\n", h.stdout.String())
}

func TestToggleCommand_Ambiguous(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("toggle", "a")

	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
	assert.Equal(t, []string{"List"}, h.service.Methods())
}

func TestEditCommand(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		h := newHarness(cliTasks()...)

		err := h.run("edit", "a1", "Buy", "oat", "milk")

		require.NoError(t, err)
		assert.Equal(t, "Updated task a1: Buy oat milk\n", h.stdout.String())
		assert.Equal(t, "Buy oat milk", h.service.Tasks[0].Text)
	})

	t.Run("offline keeps the edit locally", func(t *testing.T) {
		h := newHarness(cliTasks()...)
		h.service.UpdateErr = domain.ErrUnavailable

		err := h.run("edit", "a1", "Buy oat milk")

		require.NoError(t, err)
		assert.Contains(t, h.stderr.String(), todolist.NoticeUpdatedOffline)
		assert.Equal(t, "Buy oat milk", h.cache.Tasks[0].Text)
	})

	t.Run("unknown id", func(t *testing.T) {
		h := newHarness(cliTasks()...)

		err := h.run("edit", "zz", "text")

		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestRmCommand(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		h := newHarness(cliTasks()...)

		err := h.run("rm", "b7")

		require.NoError(t, err)
		assert.Equal(t, "Deleted task b7\n", h.stdout.String())
		assert.Len(t, h.cache.Tasks, 2)
	})

	t.Run("failure is reported and not persisted", func(t *testing.T) {
		h := newHarness(cliTasks()...)
		h.service.DeleteErr = domain.ErrUnavailable

		err := h.run("delete", "b7")

		assert.EqualError(t, err, todolist.NoticeDeleteFailed)
		assert.Equal(t, 0, h.cache.Saves)
	})
}

func TestClearCommand(t *testing.T) {
	h := newHarness(cliTasks()...)

	err := h.run("clear")

	require.NoError(t, err)
	assert.Equal(t, "Cleared 1 completed tasks\n", h.stdout.String())
	assert.Len(t, h.cache.Tasks, 2)
	assert.Equal(t, []string{"List"}, h.service.Methods())
}
