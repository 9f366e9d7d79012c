// Package store holds the geocode batch cache stores. Entries are keyed by
// geocoder.CacheKey and hold a whole geocoded establishment list.
package store

import (
	"context"
	"sync"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

// InMemoryStore keeps batches for the life of the process. Entries are never
// evicted; a new session key simply stops reading the old ones.
type InMemoryStore struct {
	mu      sync.RWMutex
	batches map[string][]models.Establishment
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{batches: make(map[string][]models.Establishment)}
}

// Get returns a copy of the batch stored under key, or sentinel.ErrCacheMiss.
func (s *InMemoryStore) Get(_ context.Context, key string) ([]models.Establishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.batches[key]
	if !ok {
		return nil, sentinel.ErrCacheMiss
	}
	return models.CloneEstablishments(items), nil
}

// Put replaces the batch stored under key.
func (s *InMemoryStore) Put(_ context.Context, key string, items []models.Establishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[key] = models.CloneEstablishments(items)
	return nil
}

// Len reports the number of stored batches.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches)
}
