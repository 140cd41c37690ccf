// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a registered identity used for authentication and
// course ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the unique, database-assigned identifier of the account.
	ID int64 `json:"id"`

	// FirstName is the given name of the account holder.
	FirstName string `json:"firstName"`

	// LastName is the family name of the account holder.
	LastName string `json:"lastName"`

	// EmailAddress is the unique login identifier of the account.
	EmailAddress string `json:"emailAddress"`

	// PasswordHash stores the salted bcrypt digest of the password.
	// This value is never the plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt and UpdatedAt are internal timestamps and are never serialized.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// Summary returns the public projection of the account that is embedded
// into course responses.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		EmailAddress: a.EmailAddress,
	}
}

// AccountSummary is the public view of an account: no password hash,
// no timestamps.
type AccountSummary struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
