// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lock serializes favorites synchronisation per user.
//
// Two implementations are provided:
//   - Local: in-process mutual exclusion, sufficient for a single server.
//   - Redis: SET NX PX based lock shared by every process pointing at the
//     same Redis, with a random token so only the holder can release it.
package lock

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lock_mock.go -package=mock

// ErrNotHeld is returned by a release func when the lock expired or was
// taken over before release.
var ErrNotHeld = errors.New("lock is not held")

// Release frees a lock obtained from [Locker.Acquire].
type Release func(ctx context.Context) error

// Locker grants exclusive ownership of a key.
type Locker interface {
	// Acquire blocks until key is free or ctx is done.
	Acquire(ctx context.Context, key string) (Release, error)
}
