package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account insert violates the
	// unique index on users.email_address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the requested
	// email address.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCourseNotFound is returned when a course lookup, update or delete
	// matches no row. Owner-scoped writes return it as well when the course
	// exists but belongs to someone else.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrNotNullViolation is the sentinel wrapped by [ConstraintError].
	ErrNotNullViolation = errors.New("not null constraint violated")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// ConstraintError reports a NOT NULL violation on a single column.
type ConstraintError struct {
	Table  string
	Column string
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrNotNullViolation, e.Table, e.Column)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{ErrNotNullViolation, e.Err}
}
