package cache

import (
	"context"
	"sync"

	"github.com/brt06a/Testv5/internal/domain/admin"
)

// MemorySessionStore keeps admin sessions in process memory. Sessions are
// lost on restart and are not shared between instances.
type MemorySessionStore struct {
	sessions sync.Map
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Save(_ context.Context, session admin.Session) error {
	s.sessions.Store(session.ID, session)
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (admin.Session, error) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return admin.Session{}, admin.ErrSessionNotFound
	}
	return v.(admin.Session), nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.sessions.Delete(id)
	return nil
}

// Close drops every session.
func (s *MemorySessionStore) Close() error {
	s.sessions.Clear()
	return nil
}
