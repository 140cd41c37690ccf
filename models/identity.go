// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the result of a successful authentication. It lives for the
// duration of a single request and is never persisted.
type Identity struct {
	Account Account
}

// AccountID returns the identifier of the authenticated account.
func (i Identity) AccountID() int64 {
	return i.Account.ID
}
