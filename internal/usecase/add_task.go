package usecase

import (
	"github.com/runoshun/devtodo/internal/domain"
)

// Add appends a new task with the given text.
// Blank text is silently rejected: the list is unchanged and Add returns nil, nil.
// The text is stored as given, without trimming.
func (s *Store) Add(text string) (*domain.Task, error) {
	if domain.IsBlank(text) {
		return nil, nil
	}

	task := domain.Task{
		ID:   domain.NextTaskID(s.clock.Now(), s.tasks),
		Text: text,
	}

	tasks := make([]domain.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, s.tasks...)
	tasks = append(tasks, task)

	return &task, s.commit(tasks, "add")
}
