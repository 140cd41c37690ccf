package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	pingMaxRetries = 3
	pingBaseDelay  = 500 * time.Millisecond
)

// DB wraps a database/sql pool together with the SQL dialect it speaks.
// Repositories build every statement through builder so that placeholders
// match the driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite, "":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
}

// ping checks the connection, retrying with exponential backoff while the
// classifier reports the failure as transient.
func (db *DB) ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewExponential(pingBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "*DB.ping").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}
