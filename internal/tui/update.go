package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorDisplayDuration is how long a write error stays in the status line.
const errorDisplayDuration = 5 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgClearError:
		if msg.seq == m.errSeq {
			m.err = nil
		}
		return m, nil
	}

	// Forward cursor blink and other internal messages to the focused input
	var cmd tea.Cmd
	switch m.mode {
	case ModeAdd:
		m.addInput, cmd = m.addInput.Update(msg)
	case ModeEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	case ModeNormal, ModeHelp:
	}
	return m, cmd
}

// updateLayoutSizes resizes components to the terminal.
func (m *Model) updateLayoutSizes() {
	// App padding (2 per side) and input border/padding
	contentWidth := max(m.width-4, 20)
	m.addInput.Width = max(contentWidth-6, 10)
	m.editInput.Width = max(contentWidth-rowPrefixWidth-4, 10)

	// Padding, header, input box, error line and footer
	const reserved = 2 + 2 + 3 + 2 + 3
	m.taskList.SetSize(contentWidth, max(m.height-reserved, 1))
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
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

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.storeResult(m.store.Toggle(task.ID))

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.store.BeginEdit(task.ID, task.Text)
		m.editInput.SetValue(task.Text)
		m.editInput.CursorEnd()
		m.editRaw = task.Text
		m.editSeed = m.editInput.Value()
		m.mode = ModeEdit
		return m, m.editInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.storeResult(m.store.Delete(task.ID))

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleAddMode handles keys while the add input is focused.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.addInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		task, err := m.store.Add(m.addInput.Value())
		if task != nil {
			// Input clears only when a task was added; focus stays for the next one
			m.addInput.Reset()
			m.selectTask(task.ID)
		}
		return m, m.storeResult(err)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleEditMode handles keys while a task is being edited.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.store.CancelEdit()
		m.leaveEditMode()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.store.UpdateDraft(m.draft())
		err := m.store.CommitEdit()
		if _, open := m.store.EditSession(); !open {
			m.leaveEditMode()
		}
		// A blank draft keeps the session open
		return m, m.storeResult(err)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.store.UpdateDraft(m.draft())
	return m, cmd
}

// draft returns the edit input value, or the stored text while the input
// still shows its initial value.
func (m *Model) draft() string {
	if v := m.editInput.Value(); v != m.editSeed {
		return v
	}
	return m.editRaw
}

func (m *Model) leaveEditMode() {
	m.mode = ModeNormal
	m.editInput.Blur()
	m.editInput.Reset()
	m.editRaw = ""
	m.editSeed = ""
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// storeResult shows err in the status line and schedules it to be cleared.
// The mutation itself has already been applied to the list.
func (m *Model) storeResult(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if m.logger != nil {
		m.logger.Error("save tasks", "error", err)
	}
	m.err = err
	m.errSeq++
	seq := m.errSeq
	return tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
		return MsgClearError{seq: seq}
	})
}
