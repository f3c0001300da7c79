package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todomaster/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeAdd, ModeEdit:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.state.Notice != "" {
		b.WriteString(m.styles.Notice.Render(m.state.Notice) + "\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewFilterTabs())
	b.WriteString("\n\n")

	b.WriteString(m.viewTaskList())

	if m.mode.IsInputMode() {
		b.WriteString("\n")
		b.WriteString(m.viewInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the counts.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("ToDo Master")
	stats := m.state.Stats()
	counts := m.styles.Stats.Render(fmt.Sprintf("Total: %d  Active: %d  Done: %d", stats.Total, stats.Active, stats.Completed))
	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", counts))
}

// viewFilterTabs renders one tab per filter, highlighting the current one.
func (m *Model) viewFilterTabs() string {
	filters := domain.AllFilters()
	tabs := make([]string, 0, len(filters))
	for _, f := range filters {
		style := m.styles.FilterTab
		if f == m.state.Filter {
			style = m.styles.FilterTabActive
		}
		tabs = append(tabs, style.Render(filterLabel(f)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func filterLabel(f domain.Filter) string {
	switch f {
	case domain.FilterAll:
		return "All"
	case domain.FilterActive:
		return "Active"
	case domain.FilterCompleted:
		return "Completed"
	}
	return string(f)
}

// viewTaskList renders the list, the loading indicator, or an empty state.
func (m *Model) viewTaskList() string {
	if m.state.Loading {
		return m.spinner.View() + " " + m.styles.EmptySubtitle.Render("Loading todos...")
	}

	if len(m.state.Visible()) == 0 {
		title, subtitle := emptyMessage(m.state.Filter, len(m.state.Tasks) > 0)
		return m.styles.EmptyTitle.Render(title) + "\n" + m.styles.EmptySubtitle.Render(subtitle)
	}

	return m.taskList.View()
}

// emptyMessage returns the headline and hint shown when no task is visible.
func emptyMessage(filter domain.Filter, haveTasks bool) (string, string) {
	var title string
	switch {
	case filter == domain.FilterCompleted:
		title = "No completed tasks yet"
	case filter == domain.FilterActive:
		title = "No active tasks"
	case haveTasks:
		title = "All done!"
	default:
		title = "No todos yet"
	}

	subtitle := "Great job staying organized!"
	if !haveTasks {
		subtitle = "Add your first task above"
	}
	return title, subtitle
}

// viewInput renders the add or edit input box.
func (m *Model) viewInput() string {
	var prompt, field string
	switch m.mode {
	case ModeAdd:
		prompt = "New task: "
		field = m.addInput.View()
	case ModeEdit:
		prompt = "Edit: "
		field = m.editInput.View()
	case ModeNormal, ModeHelp:
		return ""
	}
	return m.styles.Input.Render(m.styles.InputPrompt.Render(prompt) + field)
}

// viewFooter renders the short help line for the current mode.
func (m *Model) viewFooter() string {
	if m.mode.IsInputMode() {
		return m.styles.Footer.Render(m.help.View(inputKeys{submit: m.keys.Submit, cancel: m.keys.Escape}))
	}
	return m.styles.Footer.Render(m.help.View(m.keys))
}

// viewHelp renders the full keybinding list.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Press any key to go back"))
	return b.String()
}
