package artifact

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fishbill/internal/document"
	"fishbill/pkg/platform/sentinel"
)

// InMemory holds artifacts for the process lifetime; the default for the
// single-user deployment.
type InMemory struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*document.Document
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[uuid.UUID]*document.Document)}
}

func (s *InMemory) Put(_ context.Context, billID uuid.UUID, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[billID] = doc
	return nil
}

func (s *InMemory) Get(_ context.Context, billID uuid.UUID) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.docs[billID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return doc, nil
}
