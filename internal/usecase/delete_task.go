package usecase

import (
	"slices"

	"github.com/runoshun/devtodo/internal/domain"
)

// Delete removes the task with the given id. Unknown ids are ignored.
// An edit session targeting the deleted task is discarded.
func (s *Store) Delete(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	if s.IsEditing(id) {
		s.edit = nil
	}

	tasks := slices.Delete(s.Tasks(), i, i+1)
	return s.commit(tasks, "delete")
}

func (s *Store) indexOf(id int64) int {
	return domain.IndexOf(s.tasks, id)
}
