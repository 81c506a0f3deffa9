package service

import (
	"context"

	"github.com/MKhiriev/courses-api/models"
)

type UserService interface {
	RegisterUser(ctx context.Context, user models.NewUser) (models.User, error)
	Authenticate(ctx context.Context, emailAddress, password string) (models.User, error)
}

// CourseService holds the course use cases. Mutating methods take the
// authenticated user and enforce that it owns the course.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)
	CreateCourse(ctx context.Context, owner models.User, course models.NewCourse) (models.Course, error)
	UpdateCourse(ctx context.Context, user models.User, id int64, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, user models.User, id int64) error
}
