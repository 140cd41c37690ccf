package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

type AuthService interface {
	// RegisterAccount validates the request, hashes the password and stores
	// the account.
	RegisterAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)
	// Authenticate resolves the value of an Authorization header to an
	// identity. Every failure wraps ErrAccessDenied.
	Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error)
}

type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)
	CreateCourse(ctx context.Context, identity models.Identity, req models.CourseRequest) (models.Course, error)
	UpdateCourse(ctx context.Context, identity models.Identity, courseID int64, req models.CourseRequest) error
	DeleteCourse(ctx context.Context, identity models.Identity, courseID int64) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
