// Package usecase contains application use cases.
package usecase

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/runoshun/devtodo/internal/domain"
)

// Observer is notified with the current task list after every mutation.
// Observers run synchronously, before the mutating operation returns.
type Observer func(tasks []domain.Task) error

// Store owns the ordered task list and the transient edit session.
// It is not safe for concurrent use; every call is expected to come from
// the single UI event loop or a single CLI invocation.
type Store struct {
	clock     domain.Clock
	logger    *slog.Logger
	edit      *domain.EditSession
	tasks     []domain.Task
	observers []Observer
}

// NewStore creates an empty Store.
func NewStore(clock domain.Clock, logger *slog.Logger) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		clock:  clock,
		logger: logger,
	}
}

// Subscribe registers an observer. Observers are called in registration order.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Tasks returns a copy of the task list in display order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Task returns the task with the given id.
func (s *Store) Task(id int64) (domain.Task, bool) {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Remaining returns the number of tasks not yet completed.
func (s *Store) Remaining() int {
	return domain.CountRemaining(s.tasks)
}

// EditSession returns the active edit session, if any.
func (s *Store) EditSession() (domain.EditSession, bool) {
	if s.edit == nil {
		return domain.EditSession{}, false
	}
	return *s.edit, true
}

// IsEditing reports whether the task with the given id is in edit mode.
func (s *Store) IsEditing(id int64) bool {
	return s.edit != nil && s.edit.TargetID == id
}

// commit replaces the task list and notifies observers.
// The in-memory list is kept even when an observer fails.
func (s *Store) commit(tasks []domain.Task, op string) error {
	s.tasks = tasks

	var errs []error
	for _, o := range s.observers {
		if err := o(s.Tasks()); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)

	if s.logger != nil {
		if err != nil {
			s.logger.Error("notify observers", "op", op, "error", err)
		} else {
			s.logger.Debug("tasks updated", "op", op, "count", len(tasks))
		}
	}
	return err
}
