package usecase

// Toggle flips the completion flag of the task with the given id.
// Unknown ids are ignored.
func (s *Store) Toggle(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	tasks := s.Tasks()
	tasks[i].Completed = !tasks[i].Completed
	return s.commit(tasks, "toggle")
}
