package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// Store persists the session TokenSet. An empty store loads as the zero
// TokenSet without error.
type Store interface {
	Load(ctx context.Context) (models.TokenSet, error)
	Save(ctx context.Context, tokens models.TokenSet) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens models.TokenSet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(context.Context) (models.TokenSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, nil
}

func (s *MemoryStore) Save(_ context.Context, tokens models.TokenSet) error {
	s.mu.Lock()
	s.tokens = tokens
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.tokens = models.TokenSet{}
	s.mu.Unlock()
	return nil
}
