// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// constraintError translates a driver error raised by an INSERT or UPDATE on
// table into a domain error. It returns nil when err is not a unique or not
// null violation.
//
//   - unique violation  → [ErrEmailAlreadyExists] (the only unique index
//     besides primary keys is users.email_address)
//   - not null violation → [*ConstraintError] naming the column
func constraintError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEmailAlreadyExists
		case pgerrcode.NotNullViolation:
			if pgErr.TableName != "" {
				table = pgErr.TableName
			}
			return &ConstraintError{Table: table, Column: pgErr.ColumnName, Err: err}
		}
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return ErrEmailAlreadyExists
		case sqlite3.ErrConstraintNotNull:
			t, column := sqliteConstraintColumn(sqliteErr.Error())
			if t != "" {
				table = t
			}
			return &ConstraintError{Table: table, Column: column, Err: err}
		}
	}

	return nil
}

// sqliteConstraintColumn extracts "table" and "column" from a message such as
// "NOT NULL constraint failed: table.column".
func sqliteConstraintColumn(msg string) (string, string) {
	_, target, found := strings.Cut(msg, "constraint failed: ")
	if !found {
		return "", ""
	}

	// multi-column constraints list every column; the first one is enough
	target, _, _ = strings.Cut(target, ",")

	table, column, found := strings.Cut(strings.TrimSpace(target), ".")
	if !found {
		return "", table
	}

	return table, column
}
