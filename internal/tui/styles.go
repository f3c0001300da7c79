package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Stats      lipgloss.Style

	// Notice banner
	Notice   lipgloss.Style
	ErrorMsg lipgloss.Style

	// Filter tabs
	FilterTab       lipgloss.Style
	FilterTabActive lipgloss.Style

	// Task rows
	SelectionIndicator lipgloss.Style
	CheckOpen          lipgloss.Style
	CheckDone          lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskEditing        lipgloss.Style

	// Empty state
	EmptyTitle    lipgloss.Style
	EmptySubtitle lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Stats: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Background).
			Background(Colors.Warning).
			Padding(0, 1),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		FilterTab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),
		FilterTabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Background(Colors.Primary).
			Padding(0, 1),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),
		CheckOpen: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		CheckDone: lipgloss.NewStyle().
			Foreground(Colors.Success),
		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskTitleSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		TaskTitleDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(Colors.Muted),
		TaskEditing: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Warning),

		EmptyTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),
		EmptySubtitle: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		InputPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}
