package logic

import (
	"sync"

	"activityboard/internal/domain"
)

// MemoryActivityStore is an in-memory implementation of ActivityStore
type MemoryActivityStore struct {
	mu      sync.RWMutex
	coll    *domain.Collection
	loadErr error
}

// NewMemoryActivityStore creates an empty store
func NewMemoryActivityStore() *MemoryActivityStore {
	return &MemoryActivityStore{
		coll: domain.NewCollection(),
	}
}

func (s *MemoryActivityStore) Snapshot() *domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll
}

func (s *MemoryActivityStore) Replace(coll *domain.Collection) {
	if coll == nil {
		coll = domain.NewCollection()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coll = coll
	s.loadErr = nil
}

// ApplyFetch replaces the collection on success. On failure the previous
// collection stays and the error is kept for display.
func (s *MemoryActivityStore) ApplyFetch(coll *domain.Collection, err error) {
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loadErr = err
		return
	}
	s.Replace(coll)
}

func (s *MemoryActivityStore) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
