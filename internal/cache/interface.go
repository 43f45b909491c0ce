package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores JSON encoded values with an expiry. Get reports a miss as
// (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Key joins a prefix and its parts with ":".
func Key(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

const (
	CatalogKeyPrefix  = "catalog"
	CheckoutKeyPrefix = "checkout"
	PendingKeyPrefix  = "pending"
)
