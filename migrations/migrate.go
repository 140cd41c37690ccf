// Package migrations embeds the database schema of course-api and applies it
// with goose. Each supported dialect keeps its own set of migration files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	// DialectPostgres selects the PostgreSQL migration set.
	DialectPostgres = "postgres"
	// DialectSQLite selects the SQLite migration set.
	DialectSQLite = "sqlite3"
)

var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for the given dialect, logging
// goose progress through log.
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	if log == nil {
		log = logger.Nop()
	}
	goose.SetLogger(gooseLogger{logger: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
