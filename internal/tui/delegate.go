package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todomaster/internal/domain"
)

type taskItem struct {
	task    domain.Task
	editing bool
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to fit width display cells.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// rowPrefixWidth is the width of "  > [x] ".
const rowPrefixWidth = 8

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = ">"
	}

	check := d.styles.CheckOpen.Render("[ ]")
	if task.Completed {
		check = d.styles.CheckDone.Render("[x]")
	}

	suffix := ""
	if ti.editing {
		suffix = " (editing)"
	}

	maxTitleLen := m.Width() - rowPrefixWidth - runewidth.StringWidth(suffix) - 2
	title := truncate(escapeNewlines(task.Text), maxTitleLen)

	titleStyle := d.styles.TaskTitle
	switch {
	case task.Completed:
		titleStyle = d.styles.TaskTitleDone
	case selected:
		titleStyle = d.styles.TaskTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Bold(selected).Render(indicator) + " " + check + " " + titleStyle.Render(title)
	if suffix != "" {
		line += d.styles.TaskEditing.Render(suffix)
	}
	_, _ = fmt.Fprint(w, line)
}
