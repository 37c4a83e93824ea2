package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/kyodera/kanjipath/pkg/graphio"
)

// MemoryStore keeps orderings in process memory. Used by the CLI, by tests,
// and by the server when no Mongo URI is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	orderings map[string]graphio.Ordering
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orderings: make(map[string]graphio.Ordering)}
}

// Save stores an ordering, assigning a UUID when it has none.
func (s *MemoryStore) Save(ctx context.Context, o graphio.Ordering) (graphio.Ordering, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderings[o.ID] = o
	return o, nil
}

// Get returns the ordering with the given id.
func (s *MemoryStore) Get(ctx context.Context, id string) (graphio.Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orderings[id]
	if !ok {
		return graphio.Ordering{}, ErrNotFound
	}
	return o, nil
}

// List returns all orderings, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]graphio.Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]graphio.Ordering, 0, len(s.orderings))
	for _, o := range s.orderings {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b graphio.Ordering) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Delete removes an ordering.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderings[id]; !ok {
		return ErrNotFound
	}
	delete(s.orderings, id)
	return nil
}

// Close does nothing for a memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
