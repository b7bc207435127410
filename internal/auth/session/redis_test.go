package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	t.Run("tokens are unique per session", func(t *testing.T) {
		other, err := store.Create(ctx, 42)
		require.NoError(t, err)
		assert.NotEqual(t, token, other)
	})
}

func TestRedisStore_UnknownToken(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisStore(client, time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Renew(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	require.NoError(t, store.Renew(ctx, token))
	mr.FastForward(45 * time.Second)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestRedisStore_Destroy(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 9)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying twice is fine
	assert.NoError(t, store.Destroy(ctx, token))
}
