// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the course API.
//
// The primary abstraction is [ServerAdapter], which hides the REST transport
// from callers such as the seed command. Non-2xx responses are mapped by
// mapHTTPError to an [*APIError] wrapping one of the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden] for 403) and
// still read the messages the server returned.
package adapter

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the course API.
type ServerAdapter interface {
	// SetCredentials stores the email and password sent as HTTP Basic
	// credentials with every protected request.
	SetCredentials(email, password string)

	// Ping checks that the API answers its welcome route.
	Ping(ctx context.Context) error

	// CreateAccount registers a new account. It needs no credentials.
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) error

	// CurrentAccount returns the account the stored credentials belong to.
	CurrentAccount(ctx context.Context) (models.AccountSummary, error)

	// ListCourses returns every course with its owner summary.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns one course. A missing course yields [ErrNotFound].
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse creates a course owned by the stored credentials and
	// returns its id, taken from the Location header.
	CreateCourse(ctx context.Context, req models.CourseRequest) (int64, error)

	// UpdateCourse replaces a course owned by the stored credentials.
	UpdateCourse(ctx context.Context, courseID int64, req models.CourseRequest) error

	// DeleteCourse removes a course owned by the stored credentials.
	DeleteCourse(ctx context.Context, courseID int64) error
}
