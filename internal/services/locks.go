package service

import (
	"context"
	"sync"
)

// SessionLocks serializes work per session within this process. The cart
// and checkout services share one instance so a cart edit cannot land in
// the middle of a submission. Entries are dropped once nobody holds or
// waits on them.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

type heldLock struct {
	owner *SessionLocks
	key   string
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{locks: make(map[string]*lockEntry)}
}

// Lock blocks until key is free. The returned context marks key as held, so
// a nested Lock on it for the same key returns at once with a no-op unlock.
func (k *SessionLocks) Lock(ctx context.Context, key string) (context.Context, func()) {
	held := heldLock{owner: k, key: key}
	if ctx.Value(held) != nil {
		return ctx, func() {}
	}

	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &lockEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return context.WithValue(ctx, held, struct{}{}), func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *SessionLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.locks)
}
