// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"
	"sync"
)

type localLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// slot is a one-token semaphore shared by the waiters of one key.
type slot struct {
	ch      chan struct{}
	waiters int
}

// NewLocal returns an in-process Locker.
func NewLocal() Locker {
	return &localLocker{slots: make(map[string]*slot)}
}

func (l *localLocker) Acquire(ctx context.Context, key string) (Release, error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.waiters++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.leave(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		released := false
		once.Do(func() {
			<-s.ch
			l.leave(key, s)
			released = true
		})
		if !released {
			return ErrNotHeld
		}
		return nil
	}, nil
}

func (l *localLocker) leave(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.waiters--
	if s.waiters == 0 {
		delete(l.slots, key)
	}
}
