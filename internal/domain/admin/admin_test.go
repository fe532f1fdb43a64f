package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	a, err := NewAdmin("admin", "$2a$12$hash", "admin@promotionx.com")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID())
	assert.Equal(t, "admin", a.Username())
	assert.False(t, a.CreatedAt().IsZero())

	_, err = NewAdmin("", "hash", "a@b.c")
	assert.Error(t, err)
	_, err = NewAdmin("admin", "", "a@b.c")
	assert.Error(t, err)
	_, err = NewAdmin("admin", "hash", "")
	assert.Error(t, err)
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession("token", "admin-1", now, 24*time.Hour)

	assert.Equal(t, now.Add(24*time.Hour), s.ExpiresAt)
	assert.False(t, s.IsExpired(now.Add(23*time.Hour)))
	assert.False(t, s.IsExpired(s.ExpiresAt))
	assert.True(t, s.IsExpired(s.ExpiresAt.Add(time.Second)))
}
