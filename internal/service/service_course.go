package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
)

// courseService reads courses publicly and lets only their owners change
// them. Mutations check, in order: existence, ownership, validity.
type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (c *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses failed: %w", err)
	}

	return courses, nil
}

func (c *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	course, err := c.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		return models.Course{}, fmt.Errorf("getting course %d failed: %w", courseID, err)
	}

	return course, nil
}

// CreateCourse stores a course owned by the authenticated account. Any owner
// reference in the request is ignored.
func (c *courseService) CreateCourse(ctx context.Context, identity models.Identity, req models.CourseRequest) (models.Course, error) {
	if identity.AccountID() == 0 {
		return models.Course{}, ErrNoIdentity
	}

	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Course{}, err
	}

	course, err := c.courseRepository.CreateCourse(ctx, req.ToCourse(identity.AccountID()))
	if err != nil {
		return models.Course{}, fmt.Errorf("creating course failed: %w", err)
	}
	course.Owner = identity.Account.Summary()

	logger.FromContext(ctx).Info().
		Int64("course_id", course.ID).
		Int64("user_id", identity.AccountID()).
		Msg("course created")

	return course, nil
}

// UpdateCourse replaces the mutable fields of a course owned by identity.
//
// Returns store.ErrCourseNotFound for a missing course, ErrOwnershipDenied
// when identity is not the owner and *validators.ValidationError for an
// invalid request, checked in that order.
func (c *courseService) UpdateCourse(ctx context.Context, identity models.Identity, courseID int64, req models.CourseRequest) error {
	if _, err := c.authorizeOwner(ctx, identity, courseID); err != nil {
		return err
	}

	if err := c.validator.Validate(ctx, req); err != nil {
		return err
	}

	course := req.ToCourse(identity.AccountID())
	course.ID = courseID

	if err := c.courseRepository.UpdateCourse(ctx, course); err != nil {
		return fmt.Errorf("updating course %d failed: %w", courseID, err)
	}

	return nil
}

// DeleteCourse removes a course owned by identity.
func (c *courseService) DeleteCourse(ctx context.Context, identity models.Identity, courseID int64) error {
	if _, err := c.authorizeOwner(ctx, identity, courseID); err != nil {
		return err
	}

	if err := c.courseRepository.DeleteCourse(ctx, courseID, identity.AccountID()); err != nil {
		return fmt.Errorf("deleting course %d failed: %w", courseID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("course_id", courseID).
		Int64("user_id", identity.AccountID()).
		Msg("course deleted")

	return nil
}

// authorizeOwner loads the course and applies the ownership policy.
func (c *courseService) authorizeOwner(ctx context.Context, identity models.Identity, courseID int64) (models.Course, error) {
	if identity.AccountID() == 0 {
		return models.Course{}, ErrNoIdentity
	}

	course, err := c.courseRepository.GetCourse(ctx, courseID)
	if err != nil {
		return models.Course{}, fmt.Errorf("getting course %d failed: %w", courseID, err)
	}

	if Authorize(identity, course.OwnerID) == Deny {
		logger.FromContext(ctx).Warn().
			Int64("course_id", courseID).
			Int64("owner_id", course.OwnerID).
			Int64("user_id", identity.AccountID()).
			Msg("ownership check denied")
		return models.Course{}, ErrOwnershipDenied
	}

	return course, nil
}
