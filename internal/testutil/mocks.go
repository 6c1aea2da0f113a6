// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"sort"
	"time"

	"github.com/runoshun/devtodo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// TickingClock is a test double for domain.Clock that advances by Step on every call.
type TickingClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the current time and advances it.
func (c *TickingClock) Now() time.Time {
	now := c.NowTime
	c.NowTime = c.NowTime.Add(c.Step)
	return now
}

// MockTaskStore is a test double for domain.TaskSource and domain.TaskSink.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	ReadErr  error
	WriteErr error
	Tasks    []domain.Task
	Writes   int
	HasData  bool
}

// NewMockTaskStore creates a MockTaskStore holding tasks.
// A nil tasks slice means the slot is empty.
func NewMockTaskStore(tasks []domain.Task) *MockTaskStore {
	return &MockTaskStore{
		Tasks:   tasks,
		HasData: tasks != nil,
	}
}

// Read returns the stored tasks.
func (m *MockTaskStore) Read() ([]domain.Task, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if !m.HasData {
		return nil, domain.ErrNoData
	}
	return slices.Clone(m.Tasks), nil
}

// Write stores a copy of tasks.
func (m *MockTaskStore) Write(tasks []domain.Task) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Tasks = slices.Clone(tasks)
	m.HasData = true
	m.Writes++
	return nil
}

// MockSlotStorage is a map-backed test double for domain.SlotStorage.
// Fields are ordered to minimize memory padding.
type MockSlotStorage struct {
	Items  map[string]string
	GetErr error
	SetErr error
}

// NewMockSlotStorage creates an empty MockSlotStorage.
func NewMockSlotStorage() *MockSlotStorage {
	return &MockSlotStorage{
		Items: make(map[string]string),
	}
}

// GetItem returns the value stored under key.
func (m *MockSlotStorage) GetItem(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (m *MockSlotStorage) SetItem(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Items[key] = value
	return nil
}

// RemoveItem deletes key.
func (m *MockSlotStorage) RemoveItem(key string) error {
	delete(m.Items, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MockSlotStorage) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.Items))
	for k := range m.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.Clock          = (*TickingClock)(nil)
	_ domain.TaskRepository = (*MockTaskStore)(nil)
	_ domain.SlotStorage    = (*MockSlotStorage)(nil)
)
