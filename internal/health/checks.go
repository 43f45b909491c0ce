package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// Pinger is anything with a cheap liveness call.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	// DB is the SQL cart store, nil unless a SQL driver is configured.
	DB      *sql.DB
	Backend Pinger
	// Stripe is nil when payments are disabled.
	Stripe Pinger
}

func pingCheck(name string, p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if p == nil {
			return fmt.Errorf("%s client is not initialized", name)
		}

		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to %s: %w", name, err)
		}

		return nil
	}
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check:     healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
		},
		{
			Name:      "bakery-backend",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check:     pingCheck("bakery backend", endpoints.Backend),
		},
	}

	switch cfg.CartStore.Driver {
	case config.DriverPostgres:
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		})
	case config.DriverSQLite:
		db := endpoints.DB
		checks = append(checks, health.Config{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check: func(ctx context.Context) error {
				if db == nil {
					return fmt.Errorf("sqlite database is not open")
				}

				return db.PingContext(ctx)
			},
		})
	}

	if endpoints.Stripe != nil {
		// a Stripe outage degrades checkout but not browsing
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check:     pingCheck("stripe", endpoints.Stripe),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "bakery-storefront",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
