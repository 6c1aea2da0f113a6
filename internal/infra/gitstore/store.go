// Package gitstore provides a Git plumbing-based implementation of SlotStorage.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/devtodo/internal/domain"
)

// Store implements domain.SlotStorage using Git plumbing (refs and blobs).
// No commits are created and the working tree is never touched.
//
// Data structure:
//
//	refs/<namespace>/
//	  slots/
//	    <key> → blob (slot value)
type Store struct {
	repo      *git.Repository
	namespace string // e.g., "devtodo"
	mu        sync.RWMutex
}

// Options configures Open.
type Options struct {
	Namespace string // Ref namespace (default: domain.DefaultGitNamespace)
	Init      bool   // Initialize a repository at path if none exists
}

// Open opens the repository containing path.
func Open(path string, opts Options) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) && opts.Init {
		repo, err = git.PlainInit(path, false)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository %s: %w", path, err)
	}
	return NewWithRepo(repo, opts.Namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultGitNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
	}
}

// slotPrefix returns the ref prefix for slots in this namespace.
func (s *Store) slotPrefix() string {
	return "refs/" + s.namespace + "/slots/"
}

// slotRef returns the ref name for a slot.
func (s *Store) slotRef(key string) plumbing.ReferenceName {
	return plumbing.ReferenceName(s.slotPrefix() + key)
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.slotRef(key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get slot ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem stores value under key.
func (s *Store) SetItem(key, value string) error {
	if key == "" {
		return errors.New("empty slot key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob([]byte(value))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.slotRef(key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set slot ref: %w", err)
	}
	return nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Storer.RemoveReference(s.slotRef(key)); err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("remove slot ref: %w", err)
		}
	}
	return nil
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs, err := s.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}
	defer refs.Close()

	prefix := s.slotPrefix()
	var keys []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := string(ref.Name())
		if key, ok := strings.CutPrefix(name, prefix); ok && key != "" {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate refs: %w", err)
	}

	slices.Sort(keys)
	return keys, nil
}

func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

// Ensure Store implements SlotStorage.
var _ domain.SlotStorage = (*Store)(nil)
