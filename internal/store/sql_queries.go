package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-api/models"
)

var (
	usersTable   = models.Account{}.TableName()
	coursesTable = models.Course{}.TableName()
)

var accountColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email_address",
	"password",
	"created_at",
	"updated_at",
}

// courseColumns are selected from courses joined with their owner, courses
// aliased as "c" and users as "u".
var courseColumns = []string{
	"c.id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"c.created_at",
	"c.updated_at",
	"u.id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

func buildCreateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.
		Insert(usersTable).
		Columns("first_name", "last_name", "email_address", "password").
		Values(account.FirstName, account.LastName, account.EmailAddress, account.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindAccountByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.
		Select(accountColumns...).
		From(usersTable).
		Where(sq.Eq{"email_address": email}).
		Limit(1).
		ToSql()
}

func selectCourses(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.
		Select(courseColumns...).
		From(coursesTable + " AS c").
		Join(usersTable + " AS u ON u.id = c.user_id")
}

func buildListCoursesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectCourses(b).
		OrderBy("c.id").
		ToSql()
}

func buildGetCourseQuery(b sq.StatementBuilderType, courseID int64) (string, []any, error) {
	return selectCourses(b).
		Where(sq.Eq{"c.id": courseID}).
		ToSql()
}

func buildCreateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.
		Insert(coursesTable).
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.OwnerID).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateCourseQuery rewrites every mutable column; the WHERE clause
// scopes the update to the owner.
func buildUpdateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.
		Update(coursesTable).
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", course.EstimatedTime).
		Set("materials_needed", course.MaterialsNeeded).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": course.ID, "user_id": course.OwnerID}).
		ToSql()
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, courseID, ownerID int64) (string, []any, error) {
	return b.
		Delete(coursesTable).
		Where(sq.Eq{"id": courseID, "user_id": ownerID}).
		ToSql()
}
