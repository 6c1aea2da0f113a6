package domain

import "time"

// TasksSlotKey is the storage slot holding the serialized task list.
const TasksSlotKey = "todos"

// SlotStorage is a string key-value store with local-storage semantics.
type SlotStorage interface {
	// GetItem returns the value stored under key. ok is false if the key is absent.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error

	// Keys returns all stored keys in sorted order.
	Keys() ([]string, error)
}

// TaskSource reads the persisted task list.
type TaskSource interface {
	// Read returns the persisted tasks.
	// Returns ErrNoData if nothing is stored, or an error wrapping ErrMalformedData
	// if the stored value cannot be decoded.
	Read() ([]Task, error)
}

// TaskSink persists the task list.
type TaskSink interface {
	// Write replaces the persisted tasks with tasks.
	Write(tasks []Task) error
}

// TaskRepository reads and writes the persisted task list.
type TaskRepository interface {
	TaskSource
	TaskSink
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
