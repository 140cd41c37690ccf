// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/course-api/models"

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorize allows an operation on a resource exactly when the identity's
// account id equals ownerID. Callers reject a missing identity beforehand.
func Authorize(identity models.Identity, ownerID int64) Decision {
	if identity.AccountID() == ownerID {
		return Allow
	}
	return Deny
}
