package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/devtodo/internal/domain"
)

type taskItem struct {
	task domain.Task
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

// editView returns the rendered edit input for the task being edited.
type editView func(id int64) (string, bool)

type taskDelegate struct {
	edit   editView
	styles Styles
}

func newTaskDelegate(styles Styles, edit editView) taskDelegate {
	return taskDelegate{styles: styles, edit: edit}
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

// Render writes one row: "> [x] text". The edit input replaces the text while editing.
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	_, _ = fmt.Fprint(w, d.renderRow(ti.task, index == m.Index(), m.Width()))
}

const rowPrefixWidth = 6 // "> [x] "

func (d taskDelegate) renderRow(task domain.Task, selected bool, width int) string {
	indicator := " "
	if selected {
		indicator = d.styles.SelectionIndicator.Render(">")
	}
	checkbox := d.styles.CheckboxStyle(task.Completed).Render(Checkbox(task.Completed))
	prefix := indicator + " " + checkbox + " "

	if d.edit != nil {
		if input, ok := d.edit(task.ID); ok {
			return prefix + d.styles.EditPrompt.Render("✎ ") + input
		}
	}

	maxTextLen := width - rowPrefixWidth
	if maxTextLen < 10 {
		maxTextLen = 10
	}
	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen, "...")
	}

	return prefix + d.styles.TextStyle(task.Completed, selected).Render(text)
}
