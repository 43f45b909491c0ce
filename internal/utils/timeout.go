package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout       = 5 * time.Second
	DefaultUpstreamTimeout = 15 * time.Second
)

// WithDBTimeout bounds one round trip to a cart store.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// WithUpstreamTimeout bounds a call to the bakery backend or Stripe. Zero
// falls back to the default.
func WithUpstreamTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultUpstreamTimeout
	}

	return context.WithTimeout(ctx, d)
}
