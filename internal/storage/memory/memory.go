// Package memory is an in-process persistence gateway used by tests and the
// "memory" backend. State is lost when the process exits.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"budgetly/internal/storage"
)

// Store keeps encoded documents in a map so callers never share references
// with the stored state.
type Store struct {
	mu      sync.Mutex
	records map[string][]byte
	saveErr error
	saves   int
}

// New creates an empty Store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

var _ storage.Gateway = (*Store)(nil)

// Save encodes value and stores it under key.
func (s *Store) Save(key string, value any) error {
	data, err := storage.Encode(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return fmt.Errorf("save %s: %w", key, s.saveErr)
	}
	s.records[key] = data
	s.saves++
	return nil
}

// Load decodes the document under key into dest.
func (s *Store) Load(key string, dest any) (bool, error) {
	s.mu.Lock()
	data, ok := s.records[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := storage.Decode(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// FailSaves makes every subsequent Save return err. Pass nil to recover.
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns how many saves have succeeded.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the stored document for key.
func (s *Store) Raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[key]
	return append([]byte(nil), data...), ok
}
