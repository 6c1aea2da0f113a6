package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/devtodo/internal/domain"
	"github.com/runoshun/devtodo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	store  *usecase.Store
	logger *slog.Logger
	err    error

	// State
	tasks []domain.Task
	ui    domain.UIConfig

	// Edit state: the task text as stored, and the edit input's initial value.
	// The input flattens newlines, so the draft stays raw until the value changes.
	editRaw  string
	editSeed string

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	addInput  textinput.Model
	editInput textinput.Model

	// Numeric state (smaller types last)
	mode   Mode
	width  int
	height int
	errSeq int
}

// New creates a new TUI Model driving store.
// The model subscribes to store so that every mutation refreshes the list
// before the next frame is drawn.
func New(store *usecase.Store, ui domain.UIConfig, logger *slog.Logger) *Model {
	if ui.Title == "" {
		ui.Title = domain.DefaultUITitle
	}
	if ui.Placeholder == "" {
		ui.Placeholder = domain.DefaultUIPlaceholder
	}

	ai := textinput.New()
	ai.Placeholder = ui.Placeholder
	ai.CharLimit = 500
	ai.Prompt = "+ "

	ei := textinput.New()
	ei.CharLimit = 0 // Existing text may be longer than the add limit
	ei.Prompt = ""

	m := &Model{
		store:     store,
		logger:    logger,
		ui:        ui,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		addInput:  ai,
		editInput: ei,
	}

	taskList := list.New([]list.Item{}, newTaskDelegate(m.styles, m.editView), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()
	m.taskList = taskList

	m.tasks = store.Tasks()
	m.updateTaskList()
	store.Subscribe(m.onTasksChanged)

	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Err returns the error currently shown in the status line.
func (m *Model) Err() error {
	return m.err
}

// SelectedTask returns the currently selected task, or false if the list is empty.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task, true
	}
	return domain.Task{}, false
}

// onTasksChanged is the Store observer that keeps the rendered list in sync.
func (m *Model) onTasksChanged(tasks []domain.Task) error {
	m.tasks = tasks
	m.updateTaskList()
	return nil
}

// updateTaskList updates the task list items from tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, len(m.tasks))
	for _, task := range m.tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)

	// Keep the cursor on a row after deletions at the end of the list
	if n := len(items); n > 0 && m.taskList.Index() >= n {
		m.taskList.Select(n - 1)
	}
}

// editView renders the edit input in place of the task text being edited.
func (m *Model) editView(id int64) (string, bool) {
	if m.mode != ModeEdit || !m.store.IsEditing(id) {
		return "", false
	}
	return m.editInput.View(), true
}

// selectTask moves the cursor to the task with the given id.
func (m *Model) selectTask(id int64) {
	if i := domain.IndexOf(m.tasks, id); i >= 0 {
		m.taskList.Select(i)
	}
}
