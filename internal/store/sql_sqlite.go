package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/migrations"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteForeignKeysParam = "_foreign_keys=on"

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serialises writers; a single connection also keeps an
	// in-memory database alive and shared
	conn.SetMaxOpenConns(1)

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	// ping database
	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return db, nil
}

// sqliteDSN turns on foreign key enforcement so that deleting an account
// cascades to its courses.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteForeignKeysParam
	}

	return dsn + "?" + sqliteForeignKeysParam
}
