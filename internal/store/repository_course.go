package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
)

// courseRepository is the SQL implementation of [CourseRepository]. Reads
// join every course with its owner; writes that modify an existing course
// are scoped by user_id.
type courseRepository struct {
	*DB
	logger *logger.Logger
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.OwnerID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.Owner.ID,
		&course.Owner.FirstName,
		&course.Owner.LastName,
		&course.Owner.EmailAddress,
	)
	return course, err
}

// ListCourses returns every course ordered by ID. An empty table yields an
// empty, non-nil slice.
func (c *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(c.builder)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, scanErr := scanCourse(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		courses = append(courses, course)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "courseRepository.ListCourses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return courses, nil
}

// GetCourse returns a single course with its owner or [ErrCourseNotFound].
func (c *courseRepository) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCourseQuery(c.builder, courseID)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.GetCourse").Msg("failed to build query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanCourse(c.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.GetCourse").
			Int64("course_id", courseID).
			Msg("failed to scan course row")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// CreateCourse inserts the course owned by course.OwnerID and returns it
// with the assigned ID. The Owner summary is left as given.
func (c *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCourseQuery(c.builder, course)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.CreateCourse").Msg("failed to build query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&course.ID); err != nil {
		if domainErr := constraintError(coursesTable, err); domainErr != nil {
			return models.Course{}, domainErr
		}

		log.Err(err).
			Str("func", "courseRepository.CreateCourse").
			Int64("user_id", course.OwnerID).
			Msg("failed to insert course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return course, nil
}

// UpdateCourse rewrites the course identified by course.ID when it belongs
// to course.OwnerID. No affected rows means [ErrCourseNotFound].
func (c *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(c.builder, course)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.UpdateCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if domainErr := constraintError(coursesTable, err); domainErr != nil {
			return domainErr
		}

		log.Err(err).
			Str("func", "courseRepository.UpdateCourse").
			Int64("course_id", course.ID).
			Int64("user_id", course.OwnerID).
			Msg("failed to update course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c.expectAffected(ctx, result, "courseRepository.UpdateCourse")
}

// DeleteCourse removes the course when it belongs to ownerID. No affected
// rows means [ErrCourseNotFound].
func (c *courseRepository) DeleteCourse(ctx context.Context, courseID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(c.builder, courseID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.DeleteCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.DeleteCourse").
			Int64("course_id", courseID).
			Int64("user_id", ownerID).
			Msg("failed to delete course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c.expectAffected(ctx, result, "courseRepository.DeleteCourse")
}

func (c *courseRepository) expectAffected(ctx context.Context, result sql.Result, fn string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}
