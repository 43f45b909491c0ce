package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils"
)

// CartRepository keeps one cart snapshot per session. LoadCart returns
// nil, nil when the session has no cart, and wraps cart.ErrCorruptSnapshot
// when the stored payload cannot be decoded.
type CartRepository interface {
	LoadCart(ctx context.Context, sessionID string) (*cart.Snapshot, error)
	SaveCart(ctx context.Context, sessionID string, snap cart.Snapshot) error
	DeleteCart(ctx context.Context, sessionID string) error
}

// ForSession binds repo to one session so it can back a cart.Store.
func ForSession(repo CartRepository, sessionID string) cart.Persister {
	return &sessionCart{repo: repo, sessionID: sessionID}
}

type sessionCart struct {
	repo      CartRepository
	sessionID string
}

func (s *sessionCart) Load(ctx context.Context) (*cart.Snapshot, error) {
	return s.repo.LoadCart(ctx, s.sessionID)
}

func (s *sessionCart) Save(ctx context.Context, snap cart.Snapshot) error {
	return s.repo.SaveCart(ctx, s.sessionID, snap)
}

func (s *sessionCart) Clear(ctx context.Context) error {
	return s.repo.DeleteCart(ctx, s.sessionID)
}

// encodeSnapshot returns the items payload and the mode payload, which is
// nil for an unbound cart.
func encodeSnapshot(snap cart.Snapshot) ([]byte, []byte, error) {
	items := snap.Items
	if items == nil {
		items = []models.CartLineItem{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}

	if snap.Mode == nil {
		return itemsJSON, nil, nil
	}

	modeJSON, err := json.Marshal(snap.Mode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal cart mode: %w", err)
	}

	return itemsJSON, modeJSON, nil
}

func decodeSnapshot(itemsJSON, modeJSON []byte) (*cart.Snapshot, error) {
	snap := &cart.Snapshot{}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &snap.Items); err != nil {
			return nil, fmt.Errorf("%w: items: %w", cart.ErrCorruptSnapshot, err)
		}
	}

	if len(modeJSON) > 0 {
		var mode models.CartMode
		if err := json.Unmarshal(modeJSON, &mode); err != nil {
			return nil, fmt.Errorf("%w: mode: %w", cart.ErrCorruptSnapshot, err)
		}

		snap.Mode = &mode
	}

	return snap, nil
}

type sqlQueries struct {
	load   string
	save   string
	delete string
	purge  string
}

var postgresQueries = sqlQueries{
	load: `
		SELECT items, mode
		FROM cart_sessions
		WHERE session_id = $1 AND expires_at > $2
	`,
	save: `
		INSERT INTO cart_sessions (session_id, items, mode, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (session_id) DO UPDATE
		SET items = EXCLUDED.items, mode = EXCLUDED.mode, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`,
	delete: `DELETE FROM cart_sessions WHERE session_id = $1`,
	purge:  `DELETE FROM cart_sessions WHERE expires_at <= $1`,
}

var sqliteQueries = sqlQueries{
	load: `
		SELECT items, mode
		FROM cart_sessions
		WHERE session_id = ? AND expires_at > ?
	`,
	save: `
		INSERT INTO cart_sessions (session_id, items, mode, expires_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (session_id) DO UPDATE
		SET items = excluded.items, mode = excluded.mode, expires_at = excluded.expires_at, updated_at = CURRENT_TIMESTAMP
	`,
	delete: `DELETE FROM cart_sessions WHERE session_id = ?`,
	purge:  `DELETE FROM cart_sessions WHERE expires_at <= ?`,
}

// SQLCartRepository stores carts in the cart_sessions table. Rows carry an
// absolute expiry in unix seconds that every save pushes forward.
type SQLCartRepository struct {
	DB      *sql.DB
	queries sqlQueries
	ttl     time.Duration
	now     func() time.Time
}

func NewPostgresCartRepo(db *sql.DB, cfg *config.CartStore) *SQLCartRepository {
	return &SQLCartRepository{DB: db, queries: postgresQueries, ttl: cfg.TTL, now: time.Now}
}

func NewSQLiteCartRepo(db *sql.DB, cfg *config.CartStore) *SQLCartRepository {
	return &SQLCartRepository{DB: db, queries: sqliteQueries, ttl: cfg.TTL, now: time.Now}
}

// WithClock replaces the clock used for expiry.
func (r *SQLCartRepository) WithClock(now func() time.Time) *SQLCartRepository {
	r.now = now
	return r
}

func (r *SQLCartRepository) LoadCart(ctx context.Context, sessionID string) (*cart.Snapshot, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		items string
		mode  sql.NullString
	)

	err := r.DB.QueryRowContext(dbCtx, r.queries.load, sessionID, r.now().Unix()).Scan(&items, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}

	var modeJSON []byte
	if mode.Valid {
		modeJSON = []byte(mode.String)
	}

	return decodeSnapshot([]byte(items), modeJSON)
}

func (r *SQLCartRepository) SaveCart(ctx context.Context, sessionID string, snap cart.Snapshot) error {
	itemsJSON, modeJSON, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	mode := sql.NullString{String: string(modeJSON), Valid: modeJSON != nil}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	expiresAt := r.now().Add(r.ttl).Unix()

	if _, err := r.DB.ExecContext(dbCtx, r.queries.save, sessionID, string(itemsJSON), mode, expiresAt); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}

	return nil
}

func (r *SQLCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, r.queries.delete, sessionID); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}

	return nil
}

// PurgeExpired deletes every cart whose expiry has passed and returns the
// number of rows removed.
func (r *SQLCartRepository) PurgeExpired(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, r.queries.purge, r.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purging expired carts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purging expired carts: %w", err)
	}

	middleware.LoggerFromContext(ctx).Debug("Purged expired carts", slog.Int64("rows", n))

	return n, nil
}
