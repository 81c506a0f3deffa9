package service

import (
	"github.com/MKhiriev/courses-api/internal/config"
	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/store"
)

type Services struct {
	UserService   UserService
	CourseService CourseService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService:   NewUserService(storages.UserRepository, cfg, logger),
		CourseService: NewCourseService(storages.CourseRepository, logger),
	}
}
