package store

import (
	"context"

	"github.com/MKhiriev/courses-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CourseRepository persists courses. Read methods return courses with the
// owner projection filled in.
type CourseRepository interface {
	FindAllCourses(ctx context.Context) ([]models.Course, error)
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, id int64) error
}

// ErrorClassificator maps driver errors of one SQL dialect to a
// [ConstraintViolation].
type ErrorClassificator interface {
	Classify(err error) ConstraintViolation
}
