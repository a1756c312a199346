package lock

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestRedis_AcquireSetsKeyWithTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	l := NewRedis(client, 30*time.Second)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "user:7")
	require.NoError(t, err)

	assert.True(t, mr.Exists(keyPrefix+"user:7"))
	assert.Equal(t, 30*time.Second, mr.TTL(keyPrefix+"user:7"))

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists(keyPrefix+"user:7"))
}

func TestRedis_SecondAcquireWaits(t *testing.T) {
	client, _ := setupTestRedis(t)
	l := NewRedis(client, time.Minute)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "user:7")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 120*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(waitCtx, "user:7")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	done := make(chan error, 1)
	go func() {
		r, err := l.Acquire(ctx, "user:7")
		if err == nil {
			err = r(ctx)
		}
		done <- err
	}()

	require.NoError(t, release(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not obtain the lock after release")
	}
}

func TestRedis_ReleaseAfterExpiryDoesNotDeleteOthersLock(t *testing.T) {
	client, mr := setupTestRedis(t)
	l := NewRedis(client, time.Second)
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "user:7")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	fresh, err := l.Acquire(ctx, "user:7")
	require.NoError(t, err)

	assert.ErrorIs(t, stale(ctx), ErrNotHeld)
	assert.True(t, mr.Exists(keyPrefix+"user:7"))

	require.NoError(t, fresh(ctx))
	assert.False(t, mr.Exists(keyPrefix+"user:7"))
}

func TestRedis_ConnectionError(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	_, err := NewRedis(client, time.Second).Acquire(context.Background(), "user:1")
	assert.Error(t, err)
}

func TestNew_SelectsImplementation(t *testing.T) {
	ctx := context.Background()

	local, closeFn, err := New(ctx, config.Lock{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &localLocker{}, local)
	assert.NoError(t, closeFn())

	_, mr := setupTestRedis(t)
	remote, closeFn, err := New(ctx, config.Lock{RedisAddress: mr.Addr(), TTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &redisLocker{}, remote)
	assert.NoError(t, closeFn())

	_, _, err = New(ctx, config.Lock{RedisAddress: "127.0.0.1:1"}, logger.Nop())
	assert.Error(t, err)
}
