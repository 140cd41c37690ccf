// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseRowColumns = []string{
	"id", "title", "description", "estimated_time", "materials_needed", "user_id",
	"created_at", "updated_at", "owner_id", "first_name", "last_name", "email_address",
}

func newTestCourseRepo(t *testing.T) (*courseRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &courseRepository{DB: db, logger: logger.Nop()}, mock
}

func strPtr(s string) *string { return &s }

func TestListCourses_Success(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(courseRowColumns).
		AddRow(1, "Build a Basic Bookcase", "High-end furniture...", "12 hours", nil, 1, now, now, 1, "Joe", "Smith", "joe@smith.com").
		AddRow(2, "Learn How to Program", "In this course...", nil, nil, 2, now, now, 2, "Sally", "Jones", "sally@jones.com")

	mock.ExpectQuery("SELECT (.+) FROM courses AS c JOIN users AS u ON u.id = c.user_id ORDER BY c.id").
		WillReturnRows(rows)

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, "Build a Basic Bookcase", courses[0].Title)
	require.NotNil(t, courses[0].EstimatedTime)
	assert.Equal(t, "12 hours", *courses[0].EstimatedTime)
	assert.Nil(t, courses[0].MaterialsNeeded)
	assert.Equal(t, int64(1), courses[0].OwnerID)
	assert.Equal(t, models.AccountSummary{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}, courses[0].Owner)

	assert.Equal(t, "sally@jones.com", courses[1].Owner.EmailAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCourses_Empty(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM courses").
		WillReturnRows(sqlmock.NewRows(courseRowColumns))

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestListCourses_QueryError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM courses").
		WillReturnError(errors.New("boom"))

	_, err := repo.ListCourses(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListCourses_RowError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(courseRowColumns).
		AddRow(1, "t", "d", nil, nil, 1, now, now, 1, "Joe", "Smith", "joe@smith.com").
		RowError(0, errors.New("row broke"))

	mock.ExpectQuery("SELECT (.+) FROM courses").WillReturnRows(rows)

	_, err := repo.ListCourses(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetCourse_Success(t *testing.T) {
	repo, mock := newTestCourseRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(courseRowColumns).
		AddRow(3, "Learn How to Test Programs", "In this course...", "2 hours", "Notebook", 2, now, now, 2, "Sally", "Jones", "sally@jones.com")

	mock.ExpectQuery("SELECT (.+) FROM courses AS c JOIN users AS u ON u.id = c.user_id WHERE c.id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	course, err := repo.GetCourse(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)
	assert.Equal(t, "Notebook", *course.MaterialsNeeded)
	assert.Equal(t, int64(2), course.Owner.ID)
}

func TestGetCourse_NotFound(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM courses").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCourse(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetCourse_DBError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM courses").
		WillReturnError(errors.New("boom"))

	_, err := repo.GetCourse(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrCourseNotFound)
}

func TestCreateCourse_Success(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	course := models.Course{
		Title:         "New Course",
		Description:   "My course description",
		EstimatedTime: strPtr("3 hours"),
		OwnerID:       1,
	}

	mock.ExpectQuery("INSERT INTO courses \\(title,description,estimated_time,materials_needed,user_id\\)").
		WithArgs(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.OwnerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	created, err := repo.CreateCourse(context.Background(), course)
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, int64(1), created.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCourse_NotNullViolation(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "description"})

	_, err := repo.CreateCourse(context.Background(), models.Course{OwnerID: 1})

	var constraintErr *ConstraintError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, "courses", constraintErr.Table)
	assert.Equal(t, "description", constraintErr.Column)
}

func TestCreateCourse_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("INSERT INTO courses").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateCourse(context.Background(), models.Course{OwnerID: 42})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateCourse_Success(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	course := models.Course{ID: 1, Title: "t", Description: "d", OwnerID: 1}

	mock.ExpectExec("UPDATE courses SET (.+) WHERE id = \\$5 AND user_id = \\$6").
		WithArgs(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.ID, course.OwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateCourse(context.Background(), course))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCourse_NoRowsAffected(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCourse(context.Background(), models.Course{ID: 1, OwnerID: 2})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateCourse_ExecError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("UPDATE courses").
		WillReturnError(errors.New("boom"))

	err := repo.UpdateCourse(context.Background(), models.Course{ID: 1, OwnerID: 1})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateCourse_RowsAffectedError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("UPDATE courses").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

	err := repo.UpdateCourse(context.Background(), models.Course{ID: 1, OwnerID: 1})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeleteCourse_Success(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("DELETE FROM courses WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCourse(context.Background(), 1, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCourse_NotOwnedOrMissing(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("DELETE FROM courses").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCourse(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestDeleteCourse_ExecError(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("DELETE FROM courses").
		WillReturnError(errors.New("boom"))

	err := repo.DeleteCourse(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
