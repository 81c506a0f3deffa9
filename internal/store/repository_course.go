package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/models"
)

// courseRepository is the SQL implementation of [CourseRepository] over the
// "courses" table joined with "users" for the owner projection.
type courseRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCourseRepository constructs a [CourseRepository] backed by db.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// FindAllCourses returns every course ordered by id.
func (r *courseRepository) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCoursesQuery(r.builder, 0)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, scanErr := scanCourse(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*courseRepository.FindAllCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// FindCourseByID returns the course with the given id or [ErrCourseNotFound].
func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCoursesQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("failed to build query")
		return models.Course{}, err
	}

	course, err := scanCourse(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Int64("course_id", id).Msg("failed to scan course row")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

// CreateCourse inserts course and returns it with the assigned id and
// timestamps. A user_id without a matching user is reported as
// [ErrOwnerDoesNotExist].
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	course.CreatedAt, course.UpdatedAt = now, now

	query, args, err := buildInsertCourseQuery(r.builder, course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("failed to build query")
		return models.Course{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&course.ID); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Int64("user_id", course.UserID).Msg("error inserting course")

		switch r.classify(err) {
		case ForeignKeyViolation:
			return models.Course{}, ErrOwnerDoesNotExist
		default:
			return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return course, nil
}

// UpdateCourse applies the non-nil fields of update to the course.
func (r *courseRepository) UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(r.builder, id, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Int64("course_id", id).Msg("error updating course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCourseNotFound)
}

// DeleteCourse removes the course with the given id.
func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Int64("course_id", id).Msg("error deleting course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCourseNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (models.Course, error) {
	var course models.Course
	var estimatedTime, materialsNeeded sql.NullString

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&estimatedTime,
		&materialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.User.FirstName,
		&course.User.LastName,
		&course.User.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	if estimatedTime.Valid {
		course.EstimatedTime = &estimatedTime.String
	}
	if materialsNeeded.Valid {
		course.MaterialsNeeded = &materialsNeeded.String
	}

	return course, nil
}
