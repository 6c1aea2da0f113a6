// Package slot persists the task list into a single named storage slot.
package slot

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/devtodo/internal/domain"
)

// Adapter reads and writes the task list under a fixed slot key.
type Adapter struct {
	storage domain.SlotStorage
	key     string
}

// New creates an Adapter for the tasks slot of storage.
func New(storage domain.SlotStorage) *Adapter {
	return NewWithKey(storage, domain.TasksSlotKey)
}

// NewWithKey creates an Adapter using a custom slot key.
func NewWithKey(storage domain.SlotStorage, key string) *Adapter {
	return &Adapter{
		storage: storage,
		key:     key,
	}
}

// Key returns the slot key.
func (a *Adapter) Key() string {
	return a.key
}

// Read returns the persisted task list.
func (a *Adapter) Read() ([]domain.Task, error) {
	raw, ok, err := a.storage.GetItem(a.key)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", a.key, err)
	}
	if !ok {
		return nil, domain.ErrNoData
	}
	return Decode(raw)
}

// Write replaces the persisted task list.
func (a *Adapter) Write(tasks []domain.Task) error {
	raw, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := a.storage.SetItem(a.key, raw); err != nil {
		return fmt.Errorf("write slot %q: %w", a.key, err)
	}
	return nil
}

// Encode serializes tasks into the slot layout. A nil list encodes as "[]".
func Encode(tasks []domain.Task) (string, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a slot value. Values that are not JSON, do not match the
// slot schema, repeat an id or hold blank text yield an error wrapping
// domain.ErrMalformedData.
func Decode(raw string) ([]domain.Task, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	if err := tasksValidator.validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	if err := checkTasks(tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	return tasks, nil
}

// checkTasks enforces what the schema cannot express: ids are unique and
// every text is non-blank.
func checkTasks(tasks []domain.Task) error {
	seen := make(map[int64]struct{}, len(tasks))
	for i, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("/%d/id: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = struct{}{}
		if domain.IsBlank(t.Text) {
			return fmt.Errorf("/%d/text: blank text", i)
		}
	}
	return nil
}

// Ensure Adapter implements TaskRepository.
var _ domain.TaskRepository = (*Adapter)(nil)
