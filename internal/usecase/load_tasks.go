package usecase

import (
	"errors"
	"fmt"

	"github.com/runoshun/devtodo/internal/domain"
)

// Load replaces the task list with the persisted one.
// An empty slot yields an empty list. A malformed slot also yields an empty
// list; the anomaly is logged and the next mutation overwrites the slot.
// Observers are not notified.
func (s *Store) Load(source domain.TaskSource) error {
	tasks, err := source.Read()
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoData):
		tasks = nil
	case errors.Is(err, domain.ErrMalformedData):
		if s.logger != nil {
			s.logger.Warn("ignoring malformed task list", "slot", domain.TasksSlotKey, "error", err)
		}
		tasks = nil
	default:
		return fmt.Errorf("load tasks: %w", err)
	}

	s.tasks = tasks
	s.edit = nil

	if s.logger != nil {
		s.logger.Debug("tasks loaded", "count", len(tasks))
	}
	return nil
}
