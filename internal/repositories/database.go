package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// OpenPostgres opens an instrumented connection pool and checks that the
// database is reachable.
func OpenPostgres(cfg *config.Database) (*sql.DB, error) {
	db, err := otelsql.Open("postgres", cfg.GetDSN(), otelsql.WithAttributes(dbSystem("postgresql")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// OpenSQLite opens (or creates) the file at cfg.Path in WAL mode. SQLite
// allows a single writer, so the pool is capped at one connection.
func OpenSQLite(cfg *config.SQLite) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.Path)

	db, err := otelsql.Open("sqlite", dsn, otelsql.WithAttributes(dbSystem("sqlite")))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %q: %w", cfg.Path, err)
	}

	return db, nil
}

// Migrate applies the embedded schema for driver (config.DriverPostgres or
// config.DriverSQLite).
func Migrate(db *sql.DB, driver string) error {
	var (
		target database.Driver
		err    error
	)

	switch driver {
	case config.DriverPostgres:
		target, err = migratepg.WithInstance(db, &migratepg.Config{})
	case config.DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	slog.Info("✅ Cart store schema is up to date", slog.String("driver", driver))

	return nil
}

func dbSystem(name string) attribute.KeyValue {
	return attribute.String("db.system", name)
}
