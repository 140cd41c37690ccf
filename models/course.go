// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Course is an owned content record. OwnerID is fixed at creation and is
// never reassigned.
type Course struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// OwnerID references the account that created the course.
	OwnerID int64 `json:"ownerId"`

	// Owner is filled by read queries that join the owning account.
	Owner AccountSummary `json:"owner"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
