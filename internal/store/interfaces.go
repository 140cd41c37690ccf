package store

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts in the "users" table.
type AccountRepository interface {
	// CreateAccount inserts the account and returns it with the assigned ID.
	// A duplicate email address yields ErrEmailAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByEmail returns the account, including its password hash,
	// or ErrAccountNotFound.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
}

// CourseRepository persists courses in the "courses" table. Reads join the
// owner's public profile.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	// UpdateCourse rewrites the mutable fields of the course identified by
	// course.ID, restricted to rows owned by course.OwnerID.
	UpdateCourse(ctx context.Context, course models.Course) error
	// DeleteCourse removes the course when it is owned by ownerID.
	DeleteCourse(ctx context.Context, courseID, ownerID int64) error
}

// ErrorClassificator decides whether a failed database call may succeed on
// a later attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
