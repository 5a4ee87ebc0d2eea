package store

import (
	"context"
	"sort"
	"sync"

	"github.com/teamcut/teamcut/pkg/observability"
)

// MemoryStore is an in-process store for tests and throwaway runs.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Put stores a record.
func (s *MemoryStore) Put(ctx context.Context, rec Record) error {
	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	observability.Store().OnPut(ctx, "memory", len(rec.Teams))
	return nil
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	observability.Store().OnGet(ctx, "memory", ok)
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a record.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
	observability.Store().OnDelete(ctx, "memory")
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
