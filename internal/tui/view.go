package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
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

// viewMain renders the header, add input, task list and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	// Header
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	// Add input
	inputStyle := m.styles.Input
	if m.mode == ModeAdd {
		inputStyle = m.styles.InputActive
	}
	b.WriteString(inputStyle.Render(m.addInput.View()))
	b.WriteString("\n")

	// Error message (if any)
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	// Task list
	if len(m.tasks) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.styles.TaskList.Render(m.taskList.View()))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the remaining count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(m.ui.Title)

	countText := fmt.Sprintf("%d of %d remaining", m.store.Remaining(), len(m.tasks))
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	// Calculate spacing to right-align
	headerWidth := max(m.width-4, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("a"))
	b.WriteString(m.styles.Footer.Render(" to add your first task"))
	b.WriteString("\n")
	return b.String()
}

// viewFooter renders the key hints for the current mode.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.ShortHelpView(m.keys.ShortHelp())
	case ModeAdd:
		return m.help.ShortHelpView(m.keys.InputHelp())
	case ModeEdit:
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("enter") + " save  " +
				m.styles.FooterKey.Render("esc") + " cancel",
		)
	case ModeHelp:
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HelpTitle.Render("KEYBOARD SHORTCUTS")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("esc/? close")

	return m.styles.Help.Render(title + "\n" + body + "\n\n" + hint)
}
