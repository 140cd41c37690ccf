package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

// accountRepository is the SQL implementation of [AccountRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with the
// server-assigned ID.
//
// Error handling:
//   - unique violation on email_address → [ErrEmailAlreadyExists].
//   - not null violation → [*ConstraintError].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		if domainErr := constraintError(usersTable, err); domainErr != nil {
			log.Debug().Err(err).Str("func", "*accountRepository.CreateAccount").Msg("constraint violated")
			return models.Account{}, domainErr
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}

// FindAccountByEmail retrieves the account whose email address matches
// email, including the stored password hash.
//
// Error handling:
//   - no matching row → [ErrAccountNotFound].
//   - any other error → wrapped [ErrScanningRow].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.ID,
		&found.FirstName,
		&found.LastName,
		&found.EmailAddress,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("failed to find account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
