package admin

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is an authenticated admin login addressed by an opaque token.
type Session struct {
	ID        string
	AdminID   string
	ExpiresAt time.Time
}

func NewSession(id, adminID string, now time.Time, ttl time.Duration) Session {
	return Session{ID: id, AdminID: adminID, ExpiresAt: now.Add(ttl)}
}

// IsExpired reports whether the session is past its expiry at now.
func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionStore keeps sessions outside the relational schema. Implementations
// must be safe for concurrent use.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	// Get returns ErrSessionNotFound for unknown ids. Expired sessions may
	// still be returned; callers evict them.
	Get(ctx context.Context, id string) (Session, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
	// Close releases the store; in-process stores drop every session.
	Close() error
}
