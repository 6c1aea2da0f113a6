package usecase

import (
	"github.com/runoshun/devtodo/internal/domain"
)

// BeginEdit opens an edit session for the task, replacing any prior session.
// The draft starts as currentText.
func (s *Store) BeginEdit(id int64, currentText string) {
	s.edit = &domain.EditSession{
		TargetID:  id,
		DraftText: currentText,
	}
}

// UpdateDraft sets the draft text of the active edit session.
// Nothing is persisted. Without an active session this is a no-op.
func (s *Store) UpdateDraft(text string) {
	if s.edit == nil {
		return
	}
	s.edit.DraftText = text
}

// CommitEdit saves the draft as the target task's text and closes the session.
// A blank draft is rejected silently and the session stays open.
// If the target task no longer exists the session is still closed.
func (s *Store) CommitEdit() error {
	if s.edit == nil || domain.IsBlank(s.edit.DraftText) {
		return nil
	}

	edit := *s.edit
	s.edit = nil

	tasks := s.Tasks()
	if i := domain.IndexOf(tasks, edit.TargetID); i >= 0 {
		tasks[i].Text = edit.DraftText
	}
	return s.commit(tasks, "edit")
}

// CancelEdit closes the edit session without touching the task list.
func (s *Store) CancelEdit() {
	s.edit = nil
}

// Edit renames a task in one step.
// Unlike the interactive operations it reports rejected input:
// ErrTaskNotFound for an unknown id and ErrEmptyText for blank text.
// Any interactive edit session in progress is replaced.
func (s *Store) Edit(id int64, text string) error {
	task, ok := s.Task(id)
	if !ok {
		return domain.ErrTaskNotFound
	}
	if domain.IsBlank(text) {
		return domain.ErrEmptyText
	}

	s.BeginEdit(id, task.Text)
	s.UpdateDraft(text)
	return s.CommitEdit()
}
