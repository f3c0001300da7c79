package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todomaster/internal/app"
	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
	"github.com/runoshun/todomaster/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	state todolist.State

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	spinner  spinner.Model

	// Input state (large structs)
	addInput  textinput.Model
	editInput textinput.Model

	// Numeric state (smaller types last)
	mode   Mode
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "What needs to be done?"
	ai.CharLimit = 500

	ei := textinput.New()
	ei.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles()
	sp.Style = styles.HeaderText

	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(true)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container: c,
		state:     todolist.New(),
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		spinner:   sp,
		addInput:  ai,
		editInput: ei,
	}
}

// State returns the current task list state.
func (m *Model) State() todolist.State {
	return m.state
}

// Init starts the initial load.
func (m *Model) Init() tea.Cmd {
	m.state = m.state.BeginLoad()
	return tea.Batch(m.loadTasks(), m.spinner.Tick)
}

// loadTasks returns a command that loads tasks, falling back to the cache.
func (m *Model) loadTasks() tea.Cmd {
	loader := m.container.LoadTasksUseCase()
	return func() tea.Msg {
		out, err := loader.Execute(context.Background(), usecase.LoadTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Output: out}
	}
}

// send returns a command that issues the request behind p.
// Requests are not serialized: several may be in flight at once and they
// settle in the order the service answers.
func (m *Model) send(p *todolist.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	pending := *p
	sender := m.container.SendMutationUseCase()
	return func() tea.Msg {
		out, err := sender.Execute(context.Background(), usecase.SendMutationInput{Pending: pending})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutationSettled{Pending: pending, Response: out.Response}
	}
}

// persist writes the current list to the cache.
func (m *Model) persist() {
	_, err := m.container.SaveTasksUseCase().Execute(context.Background(), usecase.SaveTasksInput{Tasks: m.state.Tasks})
	if err != nil {
		m.err = err
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		task := ti.task
		return &task
	}
	return nil
}

// updateTaskList rebuilds the list items from the visible tasks,
// keeping the cursor on the same task when it is still visible.
func (m *Model) updateTaskList() {
	var selectedID domain.TaskID
	if t := m.SelectedTask(); t != nil {
		selectedID = t.ID
	}

	visible := m.state.Visible()
	items := make([]list.Item, 0, len(visible))
	cursor := m.taskList.Index()
	for i, task := range visible {
		if task.ID == selectedID {
			cursor = i
		}
		items = append(items, taskItem{task: task, editing: task.ID == m.state.EditingID})
	}
	m.taskList.SetItems(items)

	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor >= 0 {
		m.taskList.Select(cursor)
	}
}

// updateLayoutSizes resizes components to the window.
func (m *Model) updateLayoutSizes() {
	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	// Header, notice, filters, input and footer.
	listHeight := m.height - 14
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(contentWidth, listHeight)
	m.addInput.Width = contentWidth - 16
	m.editInput.Width = contentWidth - 16
	m.help.Width = contentWidth
}
