// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidHashFormat is returned by [PasswordHasher.Verify] when the
	// stored digest is not a hash produced by the hasher.
	ErrInvalidHashFormat = errors.New("invalid password hash format")

	// ErrInvalidHashCost is returned by [NewBcryptHasher] for a cost outside
	// the range accepted by bcrypt.
	ErrInvalidHashCost = errors.New("invalid password hash cost")
)
