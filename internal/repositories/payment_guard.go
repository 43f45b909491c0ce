package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PaymentGuardRepository protects order submission for a session: a sliding
// window limits payment attempts and a lock keeps a second submit out while
// one is in flight.
type PaymentGuardRepository interface {
	// CheckPaymentRateLimit returns isAllowed, attempts left, seconds to wait.
	CheckPaymentRateLimit(ctx context.Context, sessionID string) (bool, int, int, error)
	// AcquireSubmitLock returns the lock token, or "" when another submit
	// holds the lock.
	AcquireSubmitLock(ctx context.Context, sessionID string) (string, error)
	ReleaseSubmitLock(ctx context.Context, sessionID, token string) error
}

// releaseScript deletes the lock only when it still holds our token, so an
// expired lock re-acquired by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type paymentGuard struct {
	client redis.Cmdable
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewPaymentGuardRepo(client redis.Cmdable, cfg *config.RateConfig) PaymentGuardRepository {
	return &paymentGuard{client: client, cfg: cfg, now: time.Now}
}

func paymentAttemptsKey(sessionID string) string { return "payment_attempts:" + sessionID }
func submitLockKey(sessionID string) string      { return "submit_lock:" + sessionID }

func (r *paymentGuard) CheckPaymentRateLimit(ctx context.Context, sessionID string) (bool, int, int, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := paymentAttemptsKey(sessionID)
	now := r.now()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := now.Unix() - window

	pipe := r.client.Pipeline()

	// Attempts at or before windowStart no longer count.
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.Unix()), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {
		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			if err == nil {
				err = errors.New("empty attempt window")
			}

			return false, 0, int(window), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+window-now.Unix(), 0)

		logger.Warn("Payment attempts exceeded", slog.String("session_id", sessionID), slog.Int64("attempts", attempts))

		return false, 0, int(retryAfter), nil
	}

	return true, int(r.cfg.MaxAttempts - attempts), 0, nil
}

func (r *paymentGuard) AcquireSubmitLock(ctx context.Context, sessionID string) (string, error) {
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, submitLockKey(sessionID), token, r.cfg.SubmitLock).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire submit lock: %w", err)
	}

	if !ok {
		return "", nil
	}

	return token, nil
}

func (r *paymentGuard) ReleaseSubmitLock(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, r.client, []string{submitLockKey(sessionID)}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release submit lock: %w", err)
	}

	return nil
}
