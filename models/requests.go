// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateAccountRequest is the body of POST /users.
//
// Fields are pointers so that validation can tell an absent field from an
// empty one.
type CreateAccountRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}

// CourseRequest is the body of POST /courses and PUT /courses/{id}.
// Any owner reference sent by the client is ignored: the owner is always the
// authenticated account.
type CourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// value dereferences s, returning "" for nil.
func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToAccount converts a validated request into an [Account] without a hash.
func (r CreateAccountRequest) ToAccount() Account {
	return Account{
		FirstName:    value(r.FirstName),
		LastName:     value(r.LastName),
		EmailAddress: value(r.EmailAddress),
	}
}

// ToCourse converts a validated request into a [Course] owned by ownerID.
func (r CourseRequest) ToCourse(ownerID int64) Course {
	return Course{
		Title:           value(r.Title),
		Description:     value(r.Description),
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
		OwnerID:         ownerID,
	}
}
