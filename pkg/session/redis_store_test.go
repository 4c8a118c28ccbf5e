package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := session.NewRedisStore(client)

	s := &session.Session{
		Token:     "redis-test-token",
		UserID:    "u-1",
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Minute).Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, s))

	ttl, err := client.TTL(ctx, "session:"+s.Token).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.Username, got.Username)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, s.Token))
	_, err = store.Get(ctx, s.Token)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	expired := &session.Session{Token: "gone", ExpiresAt: time.Now().Add(-time.Second)}
	assert.ErrorIs(t, store.Save(ctx, expired), session.ErrSessionExpired)
}
