// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/utils"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix       = "fave-tweets:sync-lock:"
	defaultRetryGap = 50 * time.Millisecond
)

// unlockScript deletes the key only while it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client   *redis.Client
	ttl      time.Duration
	retryGap time.Duration
	tokens   *utils.UUIDGenerator
}

// NewRedisClient connects to the Redis server described by cfg.
// TLS is enabled when a password is set.
func NewRedisClient(ctx context.Context, cfg config.Lock) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	}

	if cfg.RedisPassword != "" {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddress, err)
	}

	return client, nil
}

// NewRedis returns a Locker backed by client. Held keys expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = config.DefaultLockTTL
	}
	return &redisLocker{
		client:   client,
		ttl:      ttl,
		retryGap: defaultRetryGap,
		tokens:   utils.NewUUIDGenerator(),
	}
}

func (r *redisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	redisKey := keyPrefix + key
	token := r.tokens.Generate()

	ticker := time.NewTicker(r.retryGap)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("acquiring lock %q: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return func(ctx context.Context) error {
		deleted, err := unlockScript.Run(ctx, r.client, []string{redisKey}, token).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("releasing lock %q: %w", key, err)
		}
		if deleted == 0 {
			return ErrNotHeld
		}
		return nil
	}, nil
}
