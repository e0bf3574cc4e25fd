package store

import (
	"context"
	"sync"

	"maskle/game"
)

// MemoryStore keeps sessions in a mutex-guarded map. Used in tests and
// single-process dev runs; it clones on both sides so callers never alias
// stored state.
type MemoryStore struct {
	sessions map[string]*game.Session
	mu       sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*game.Session),
	}
}

func (s *MemoryStore) Create(_ context.Context, session *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, session *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}
