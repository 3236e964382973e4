package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle shared by every repository.
type DB struct {
	*gorm.DB
}

// schema lists the models in dependency order.
var schema = []any{
	&models.User{},
	&models.RefreshToken{},
	&models.BlacklistedToken{},
	&models.AuditLog{},
	&models.Group{},
	&models.GroupMember{},
	&models.Client{},
	&models.RecurringObligation{},
	&models.Transaction{},
}

// postgresIndexes are partial and expression indexes gorm tags cannot express.
var postgresIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email)) WHERE deleted_at IS NULL",
	"CREATE INDEX IF NOT EXISTS idx_group_members_user ON group_members (user_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_group_date ON transactions (group_id, date DESC)",
	"CREATE INDEX IF NOT EXISTS idx_recurring_active ON recurring_obligations (group_id) WHERE active",
	"CREATE INDEX IF NOT EXISTS idx_clients_group_name ON clients (group_id, LOWER(name))",
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// New opens the postgres pool described by cfg without touching the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("opening postgres %s/%s: %w", cfg.Host, cfg.Name, err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxConnections)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{DB: db}, nil
}

// AutoMigrate creates the schema from the models. Tests use it directly; the
// server falls back to it when SQL migrations are off or fail.
func (db *DB) AutoMigrate() error {
	if err := db.DB.AutoMigrate(schema...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

func (db *DB) createIndexes(ctx context.Context) {
	for _, stmt := range postgresIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			slog.WarnContext(ctx, "skipping index", "statement", stmt, "error", err)
		}
	}
}

// Initialize connects, brings the schema up to date and adds the extra
// indexes. SQL migrations run when AUTO_MIGRATE is set; otherwise, or when
// they fail, the models are auto-migrated.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	pool, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	migrated, err := migrateOnStartup(ctx, pool, &cfg.Database)
	if err != nil {
		slog.WarnContext(ctx, "sql migrations failed, using model auto-migration", "error", err)
		migrated = false
	}
	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	db.createIndexes(ctx)
	slog.InfoContext(ctx, "database ready", "sql_migrations", migrated)
	return db, nil
}
