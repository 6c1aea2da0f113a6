// Package jsonstore provides a JSON file-based implementation of SlotStorage.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"

	"github.com/runoshun/devtodo/internal/domain"
)

// storeData is the JSON file structure: slot key to slot value.
type storeData map[string]string

// Store implements domain.SlotStorage using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the storage file path.
func (s *Store) Path() string {
	return s.path
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(func(data storeData) error {
		value, ok = data[key]
		return nil
	})
	return value, ok, err
}

// SetItem stores value under key.
func (s *Store) SetItem(key, value string) error {
	return s.withLockWrite(func(data storeData) error {
		data[key] = value
		return nil
	})
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(key string) error {
	return s.withLockWrite(func(data storeData) error {
		delete(data, key)
		return nil
	})
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(func(data storeData) error {
		keys = make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		return nil
	})
	slices.Sort(keys)
	return keys, err
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(storeData) error) error {
	lock, err := s.acquireLock(false)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(storeData) error) error {
	lock, err := s.acquireLock(true)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(exclusive bool) (*flock.Flock, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(s.lockPath)
	var err error
	if exclusive {
		err = lock.Lock()
	} else {
		err = lock.RLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

// read loads the storage file. A missing or empty file is empty storage.
func (s *Store) read() (storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(storeData), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(content) == 0 {
		return make(storeData), nil
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse storage file %s: %w", s.path, err)
	}
	if data == nil {
		data = make(storeData)
	}

	return data, nil
}

func (s *Store) write(data storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements SlotStorage.
var _ domain.SlotStorage = (*Store)(nil)
