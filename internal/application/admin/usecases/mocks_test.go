package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/brt06a/Testv5/internal/domain/admin"
)

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

// plainHasher treats "hash:<password>" as the hash of password.
type plainHasher struct{}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]admin.Session
	failGet  error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]admin.Session)}
}

func (s *fakeSessionStore) Save(_ context.Context, session admin.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (admin.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return admin.Session{}, s.failGet
	}
	session, ok := s.sessions[id]
	if !ok {
		return admin.Session{}, admin.ErrSessionNotFound
	}
	return session, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *fakeSessionStore) Close() error {
	return nil
}

func (s *fakeSessionStore) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

type staticTokens struct {
	token string
}

func (s staticTokens) Generate() (string, error) {
	return s.token, nil
}
