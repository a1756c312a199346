// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
)

// New builds the Locker selected by cfg: Redis when an address is
// configured, in-process otherwise. The returned close func releases the
// Redis connection.
func New(ctx context.Context, cfg config.Lock, log *logger.Logger) (Locker, func() error, error) {
	if cfg.RedisAddress == "" {
		log.Info().Msg("using in-process sync lock")
		return NewLocal(), func() error { return nil }, nil
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		log.Err(err).Str("addr", cfg.RedisAddress).Msg("redis lock unavailable")
		return nil, nil, err
	}

	log.Info().Str("addr", cfg.RedisAddress).Dur("ttl", cfg.TTL).Msg("using redis sync lock")
	return NewRedis(client, cfg.TTL), client.Close, nil
}
