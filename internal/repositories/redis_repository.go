package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.Username, cfg.Host, cfg.Port)))

	opt, err := redis.ParseURL(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func cartItemsKey(sessionID string) string { return "cart:" + sessionID }
func cartModeKey(sessionID string) string  { return "cartMode:" + sessionID }

// RedisCartRepository keeps items and mode under two keys that share a
// sliding TTL.
type RedisCartRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCartRepo(client redis.Cmdable, cfg *config.CartStore) *RedisCartRepository {
	return &RedisCartRepository{client: client, ttl: cfg.TTL}
}

func (r *RedisCartRepository) LoadCart(ctx context.Context, sessionID string) (*cart.Snapshot, error) {
	vals, err := r.client.MGet(ctx, cartItemsKey(sessionID), cartModeKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s from redis: %w", sessionID, err)
	}

	if vals[0] == nil && vals[1] == nil {
		return nil, nil
	}

	raw := make([][]byte, 2)

	for i, v := range vals {
		switch s := v.(type) {
		case nil:
		case string:
			raw[i] = []byte(s)
		default:
			return nil, fmt.Errorf("%w: unexpected redis value %T", cart.ErrCorruptSnapshot, v)
		}
	}

	return decodeSnapshot(raw[0], raw[1])
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, sessionID string, snap cart.Snapshot) error {
	itemsJSON, modeJSON, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, cartItemsKey(sessionID), itemsJSON, r.ttl)

		if modeJSON == nil {
			pipe.Del(ctx, cartModeKey(sessionID))
		} else {
			pipe.Set(ctx, cartModeKey(sessionID), modeJSON, r.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save cart %s to redis: %w", sessionID, err)
	}

	return nil
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartItemsKey(sessionID), cartModeKey(sessionID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete cart %s from redis: %w", sessionID, err)
	}

	return nil
}
