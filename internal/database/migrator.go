package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"group-ledger/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationStatus is the schema version recorded by golang-migrate.
type MigrationStatus struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// MigrationRunner applies the SQL migrations under db/migrations.
type MigrationRunner struct {
	db       *sql.DB
	path     string
	attempts int
	interval time.Duration
	logger   *slog.Logger
}

func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	r := &MigrationRunner{
		db:       db,
		path:     cfg.MigrationsPath,
		attempts: cfg.ReadyAttempts,
		interval: cfg.ReadyInterval,
		logger:   slog.Default().With("component", "migrator"),
	}
	if r.path == "" {
		r.path = "db/migrations"
	}
	if r.attempts <= 0 {
		r.attempts = 1
	}
	return r
}

// WaitForDatabase pings until the database answers, the attempts run out or
// ctx is done.
func (r *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		if err = r.db.PingContext(ctx); err == nil {
			return nil
		}
		r.logger.Warn("database not ready", "attempt", attempt, "max_attempts", r.attempts, "error", err)
		if attempt == r.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", r.attempts, err)
}

// Up applies every pending migration. A dirty schema is forced back to its
// recorded version first so a crashed deploy can be retried.
func (r *MigrationRunner) Up() error {
	m, err := r.open()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		r.logger.Warn("schema is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("forcing schema version %d: %w", version, err)
		}
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		r.logger.Info("schema up to date", "version", version)
	case err != nil:
		return fmt.Errorf("applying migrations: %w", err)
	default:
		r.logger.Info("migrations applied", "from_version", version)
	}
	return nil
}

// Down reverts the given number of migrations.
func (r *MigrationRunner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}
	m, err := r.open()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rolling back %d migrations: %w", steps, err)
	}
	r.logger.Info("migrations rolled back", "steps", steps)
	return nil
}

// Status reports the applied version. A database without any migration
// reports version 0.
func (r *MigrationRunner) Status() (MigrationStatus, error) {
	m, err := r.open()
	if err != nil {
		return MigrationStatus{}, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("reading schema version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

func (r *MigrationRunner) open() (*migrate.Migrate, error) {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return nil, fmt.Errorf("resolving migrations path: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, r.path)
	}

	driver, err := postgres.WithInstance(r.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("creating migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(abs), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	return m, nil
}

// migrateOnStartup applies SQL migrations when enabled. It reports whether the
// SQL migrations are in charge of the schema.
func migrateOnStartup(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) (bool, error) {
	if !cfg.AutoMigrate {
		return false, nil
	}
	runner := NewMigrationRunner(db, cfg)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return true, err
	}
	if err := runner.Up(); err != nil {
		return true, err
	}
	return true, nil
}
