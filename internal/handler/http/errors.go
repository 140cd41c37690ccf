// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response messages shared by handlers and middleware.
const (
	msgWelcome          = "Welcome to the REST API project!"
	msgAccessDenied     = "Access Denied"
	msgRouteNotFound    = "Route Not Found"
	msgCourseNotFound   = "Course Not Found"
	msgOwnershipDenied  = "You can only modify courses you own"
	msgInvalidJSON      = "Invalid JSON was passed"
	msgInternalError    = "Internal Server Error"
	basicAuthChallenge  = `Basic realm="course-api", charset="UTF-8"`
	authorizationHeader = "Authorization"
)

// ErrInvalidCourseID is returned when the {id} path segment is not a
// positive integer.
var ErrInvalidCourseID = errors.New("invalid course id")
