package store

import (
	"context"
	"strings"
	"sync"

	"fishbill/internal/catalog/models"
	"fishbill/pkg/platform/sentinel"
)

// InMemory is the default catalog store: a seeded, process-lifetime list of
// parties. Name lookup is case-insensitive; List preserves insertion order
// so the form dropdown is stable.
type InMemory struct {
	mu      sync.RWMutex
	byName  map[string]*models.Party
	ordered []string
}

func NewInMemory() *InMemory {
	return &InMemory{byName: make(map[string]*models.Party)}
}

func (s *InMemory) Create(_ context.Context, party *models.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(party.Name)
	if _, exists := s.byName[key]; exists {
		return sentinel.ErrConflict
	}
	s.byName[key] = party
	s.ordered = append(s.ordered, key)
	return nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parties := make([]*models.Party, 0, len(s.ordered))
	for _, key := range s.ordered {
		parties = append(parties, s.byName[key])
	}
	return parties, nil
}

func (s *InMemory) FindByName(_ context.Context, name string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	party, exists := s.byName[strings.ToLower(name)]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return party, nil
}
