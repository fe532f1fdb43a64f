package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brt06a/Testv5/internal/domain/admin"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	now := time.Now()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)

	session := admin.NewSession("tok", "admin-1", now, time.Hour)
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, store.Delete(ctx, "tok"))
	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
}

func TestMemorySessionStore_CloseDropsSessions(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, admin.NewSession("a", "admin-1", time.Now(), time.Hour)))
	require.NoError(t, store.Save(ctx, admin.NewSession("b", "admin-1", time.Now(), time.Hour)))
	require.NoError(t, store.Close())

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
}

func TestMemorySessionStore_Concurrent(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = store.Save(ctx, admin.NewSession(id, "admin-1", time.Now(), time.Hour))
			_, _ = store.Get(ctx, id)
			_ = store.Delete(ctx, id)
		}(i)
	}
	wg.Wait()
}

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisSessionStore(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisSessionStore(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	session := admin.NewSession("tok", "admin-1", now, time.Hour)
	require.NoError(t, store.Save(ctx, session))

	ttl, err := client.TTL(ctx, "admin_session:tok").Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", got.AdminID)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
}

func TestRedisSessionStore_SkipsExpiredSessions(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisSessionStore(client)
	ctx := context.Background()

	expired := admin.NewSession("old", "admin-1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, store.Save(ctx, expired))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, admin.ErrSessionNotFound)
}
