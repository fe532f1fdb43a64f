package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/shared/constants"
)

type sessionRecord struct {
	AdminID   string    `json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisSessionStore shares admin sessions between instances. Keys expire
// together with the session.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		prefix: constants.RedisKeyAdminSession,
		now:    time.Now,
	}
}

func (s *RedisSessionStore) Save(ctx context.Context, session admin.Session) error {
	if session.ID == "" {
		return errors.New("session id cannot be empty")
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(sessionRecord{AdminID: session.AdminID, ExpiresAt: session.ExpiresAt})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (admin.Session, error) {
	data, err := s.client.Get(ctx, s.buildKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return admin.Session{}, admin.ErrSessionNotFound
		}
		return admin.Session{}, fmt.Errorf("failed to retrieve session from redis: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return admin.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return admin.Session{ID: id, AdminID: record.AdminID, ExpiresAt: record.ExpiresAt}, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.buildKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// Close leaves sessions in redis; the client is closed by its owner.
func (s *RedisSessionStore) Close() error {
	return nil
}

func (s *RedisSessionStore) buildKey(id string) string {
	return s.prefix + id
}
