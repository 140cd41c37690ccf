package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
)

// Storages groups the repositories handed to the service layer together with
// the connection they share.
type Storages struct {
	AccountRepository AccountRepository
	CourseRepository  CourseRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		CourseRepository:  NewCourseRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
