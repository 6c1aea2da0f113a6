package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Background lipgloss.Color

	// Text colors
	TextNormal   lipgloss.Color
	TextSelected lipgloss.Color
	TextDone     lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TextNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TextSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	TextDone:     lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Add input
	Input       lipgloss.Style
	InputActive lipgloss.Style

	// Task list
	TaskList           lipgloss.Style
	TaskText           lipgloss.Style
	TaskTextSelected   lipgloss.Style
	TaskDone           lipgloss.Style
	Checkbox           lipgloss.Style
	CheckboxDone       lipgloss.Style
	SelectionIndicator lipgloss.Style
	EditPrompt         lipgloss.Style

	// Help
	Help      lipgloss.Style
	HelpTitle lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		InputActive: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		TaskList: lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1),

		TaskText: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		TaskTextSelected: lipgloss.NewStyle().
			Foreground(Colors.TextSelected).
			Bold(true),

		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.TextDone).
			Strikethrough(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TextSelected).
			Bold(true),

		EditPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// CheckboxStyle returns the checkbox style for a task's completion state.
func (s Styles) CheckboxStyle(completed bool) lipgloss.Style {
	if completed {
		return s.CheckboxDone
	}
	return s.Checkbox
}

// TextStyle returns the text style for a task row.
// Completed tasks are struck through whether selected or not.
func (s Styles) TextStyle(completed, selected bool) lipgloss.Style {
	switch {
	case completed && selected:
		return s.TaskDone.Bold(true)
	case completed:
		return s.TaskDone
	case selected:
		return s.TaskTextSelected
	default:
		return s.TaskText
	}
}

// Checkbox returns the checkbox glyph for a task's completion state.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
