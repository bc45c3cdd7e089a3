package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "giftShopWishlist", []byte(`[]`)))

	data, err := store.Load(ctx, "giftShopWishlist")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestRedisStore_LoadMissingKey(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, err := store.Load(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Save(context.Background(), "giftShopCart", []byte(`[]`)))
	assert.True(t, mr.Exists("giftshop:giftShopCart"))
}

func TestRedisStore_BackendDown(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	err := store.Save(context.Background(), "key", []byte("x"))
	assert.Error(t, err)
}
