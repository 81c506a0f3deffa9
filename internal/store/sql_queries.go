package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/courses-api/models"
)

const (
	usersTable   = "users"
	coursesTable = "courses"
)

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email_address",
	"password",
	"created_at",
	"updated_at",
}

// courseWithOwnerColumns is the projection shared by the course read
// queries: the course row followed by the owner projection.
var courseWithOwnerColumns = []string{
	"c.id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"c.created_at",
	"c.updated_at",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("first_name", "last_name", "email_address", "password", "created_at", "updated_at").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCoursesQuery selects courses joined with their owner. A zero id
// selects all courses.
func buildSelectCoursesQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	builder := b.
		Select(courseWithOwnerColumns...).
		From(coursesTable + " c").
		Join(usersTable + " u ON u.id = c.user_id")

	if id != 0 {
		builder = builder.Where(sq.Eq{"c.id": id})
	}

	query, args, err := builder.OrderBy("c.id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	query, args, err := b.
		Insert(coursesTable).
		Columns("title", "description", "estimated_time", "materials_needed", "user_id", "created_at", "updated_at").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID, course.CreatedAt, course.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateCourseQuery sets only the fields present in update. id and
// user_id are never part of the SET clause.
func buildUpdateCourseQuery(b sq.StatementBuilderType, id int64, update models.CourseUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(coursesTable)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.EstimatedTime != nil {
		builder = builder.Set("estimated_time", *update.EstimatedTime)
	}
	if update.MaterialsNeeded != nil {
		builder = builder.Set("materials_needed", *update.MaterialsNeeded)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(coursesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
