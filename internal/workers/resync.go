// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/service"
)

// ResyncWorker synchronises every known user once per interval.
type ResyncWorker struct {
	users    service.UserService
	sync     service.SyncService
	interval time.Duration
	logger   *logger.Logger
}

func NewResyncWorker(users service.UserService, sync service.SyncService, interval time.Duration, logger *logger.Logger) *ResyncWorker {
	return &ResyncWorker{
		users:    users,
		sync:     sync,
		interval: interval,
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled. A non-positive interval disables the
// worker.
func (r *ResyncWorker) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info().Msg("resync worker disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("resync worker started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("resync worker stopped")
			return
		case <-ticker.C:
			r.ResyncAll(ctx)
		}
	}
}

// ResyncAll synchronises every user one after another. A failure for one
// user is logged and does not stop the others.
func (r *ResyncWorker) ResyncAll(ctx context.Context) (synced, failed int) {
	ctx = r.logger.WithContext(ctx)

	users, err := r.users.ListUsers(ctx)
	if err != nil {
		r.logger.Err(err).Msg("resync: listing users failed")
		return 0, 0
	}

	for _, user := range users {
		if ctx.Err() != nil {
			break
		}

		report, err := r.sync.Synchronize(ctx, user)
		if err != nil && !errors.Is(err, service.ErrSyncIterationLimit) {
			failed++
			r.logger.Err(err).Int64("user_id", user.UserID).Msg("resync: user sync failed")
			continue
		}
		synced++
		r.logger.Debug().Int64("user_id", user.UserID).Int64("inserted", report.Inserted).Msg("resync: user synced")
	}

	r.logger.Info().Int("users", len(users)).Int("synced", synced).Int("failed", failed).Msg("resync round finished")
	return synced, failed
}
