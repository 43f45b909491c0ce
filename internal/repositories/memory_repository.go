package repository

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
)

type memoryEntry struct {
	items     []byte
	mode      []byte
	expiresAt time.Time
}

// MemoryCartRepository keeps carts in process. Entries are stored encoded
// so callers never share slices with the repository. Carts are lost on
// restart.
type MemoryCartRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCartRepo(cfg *config.CartStore) *MemoryCartRepository {
	return &MemoryCartRepository{
		entries: make(map[string]memoryEntry),
		ttl:     cfg.TTL,
		now:     time.Now,
	}
}

func (r *MemoryCartRepository) WithClock(now func() time.Time) *MemoryCartRepository {
	r.now = now
	return r
}

func (r *MemoryCartRepository) LoadCart(_ context.Context, sessionID string) (*cart.Snapshot, error) {
	r.mu.Lock()
	entry, ok := r.entries[sessionID]

	if ok && !r.now().Before(entry.expiresAt) {
		delete(r.entries, sessionID)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return nil, nil
	}

	return decodeSnapshot(entry.items, entry.mode)
}

func (r *MemoryCartRepository) SaveCart(_ context.Context, sessionID string, snap cart.Snapshot) error {
	items, mode, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sessionID] = memoryEntry{items: items, mode: mode, expiresAt: r.now().Add(r.ttl)}

	return nil
}

func (r *MemoryCartRepository) DeleteCart(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)

	return nil
}

// PurgeExpired drops expired entries.
func (r *MemoryCartRepository) PurgeExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64

	now := r.now()
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
			n++
		}
	}

	return n, nil
}
