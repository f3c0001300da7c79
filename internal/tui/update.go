package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgTasksLoaded:
		m.state = msg.Output.Apply(m.state)
		m.updateTaskList()
		return m, nil

	case MsgMutationSettled:
		state, outcome := m.state.Settle(msg.Pending, msg.Response)
		m.state = state
		if outcome.Persist {
			m.persist()
		}
		m.syncInputs()
		m.updateTaskList()
		return m, nil

	case MsgError:
		m.err = msg.Err
		if m.state.Loading {
			m.state.Loading = false
		}
		return m, nil
	}

	return m, nil
}

// syncInputs mirrors state buffers that a settle may have cleared.
func (m *Model) syncInputs() {
	if m.addInput.Value() != m.state.Input {
		m.addInput.SetValue(m.state.Input)
	}
	if m.mode == ModeEdit && !m.state.IsEditing() {
		m.mode = ModeNormal
		m.editInput.Blur()
		m.editInput.Reset()
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		state, p := m.state.BeginToggle(task.ID)
		m.state = state
		m.updateTaskList()
		return m, m.send(p)

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.state = m.state.StartEdit(task.ID)
		m.editInput.SetValue(m.state.EditText)
		m.editInput.CursorEnd()
		m.mode = ModeEdit
		m.updateTaskList()
		return m, m.editInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		state, p := m.state.BeginDelete(task.ID)
		m.state = state
		m.updateTaskList()
		return m, m.send(p)

	case key.Matches(msg, m.keys.Clear):
		if m.state.Stats().Completed == 0 {
			return m, nil
		}
		out, err := m.container.ClearCompletedUseCase().Execute(context.Background(), usecase.ClearCompletedInput{State: m.state})
		if err != nil {
			m.err = err
			return m, nil
		}
		m.state = out.State
		m.updateTaskList()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		return m.setFilter(m.state.Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(domain.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		return m.setFilter(domain.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		return m.setFilter(domain.FilterCompleted)

	case key.Matches(msg, m.keys.Refresh):
		if m.state.Loading {
			return m, nil
		}
		m.state = m.state.BeginLoad()
		return m, tea.Batch(m.loadTasks(), m.spinner.Tick)
	}

	// Navigation is handled by the list.
	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) setFilter(f domain.Filter) (tea.Model, tea.Cmd) {
	m.state = m.state.WithFilter(f)
	m.updateTaskList()
	return m, nil
}

func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.addInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.state.Loading {
			return m, nil
		}
		state, p := m.state.BeginAdd(m.addInput.Value(), m.container.IDs.NewID(), m.container.Clock.Now())
		m.state = state
		return m, m.send(p)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	m.state = m.state.WithInput(m.addInput.Value())
	return m, cmd
}

func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.state = m.state.CancelEdit()
		m.mode = ModeNormal
		m.editInput.Blur()
		m.editInput.Reset()
		m.updateTaskList()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		state, p := m.state.BeginEdit(m.state.EditingID, m.editInput.Value())
		m.state = state
		if p == nil && m.state.IsEditing() {
			// Empty text: stay in edit mode.
			return m, nil
		}
		m.mode = ModeNormal
		m.editInput.Blur()
		m.updateTaskList()
		return m, m.send(p)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.state = m.state.WithEditText(m.editInput.Value())
	return m, cmd
}

// handleHelpMode returns to the list on any key.
func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}
