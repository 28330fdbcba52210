package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/yigit/madrasah/internal/pkg/logger"
)

//go:embed sql/*.sql
var FS embed.FS

const migrationsDir = "sql"

// gooseUp is replaced in tests
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrator applies the embedded schema migrations
type Migrator struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB, lgr zerolog.Logger) *Migrator {
	return &Migrator{db: db, logger: lgr}
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(logger.GooseAdapter{Logger: m.logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := gooseUp(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	m.logger.Info().Msg("Database migrations applied")
	return nil
}
