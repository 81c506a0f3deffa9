package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/store"
	"github.com/MKhiriev/courses-api/internal/validators"
	"github.com/MKhiriev/courses-api/models"
)

type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator

	logger *logger.Logger
}

// NewCourseService constructs a CourseService wired to the given
// CourseRepository.
func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validators.NewCourseValidator(),
		logger:           logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.FindAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	if errors.Is(err, store.ErrCourseNotFound) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// CreateCourse stores a new course owned by owner. The userId of the request
// body is not trusted.
func (s *courseService) CreateCourse(ctx context.Context, owner models.User, course models.NewCourse) (models.Course, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.validator.Validate(ctx, course); err != nil {
		log.Debug().Err(err).Msg("course validation failed")
		return models.Course{}, err
	}

	if course.UserID != nil && *course.UserID != owner.ID {
		log.Warn().Int64("user_id", owner.ID).Int64("requested_user_id", *course.UserID).
			Msg("course owner in request body differs from authenticated user, using authenticated user")
	}

	created, err := s.courseRepository.CreateCourse(ctx, models.Course{
		Title:           *course.Title,
		Description:     *course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          owner.ID,
	})
	if errors.Is(err, store.ErrOwnerDoesNotExist) {
		return models.Course{}, validators.NewValidationError(fmt.Sprintf(msgOwnerNotExistFmt, owner.ID))
	}
	if err != nil {
		log.Err(err).Str("func", "*courseService.CreateCourse").Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	created.User = models.CourseOwner{
		FirstName:    owner.FirstName,
		LastName:     owner.LastName,
		EmailAddress: owner.EmailAddress,
	}

	log.Info().Int64("course_id", created.ID).Int64("user_id", owner.ID).Msg("course created")
	return created, nil
}

// UpdateCourse applies update to the course. Existence is checked before
// ownership, ownership before validation.
func (s *courseService) UpdateCourse(ctx context.Context, user models.User, id int64, update models.CourseUpdate) error {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.checkOwnership(ctx, user, id); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("course update validation failed")
		return err
	}

	if update.IsEmpty() {
		return nil
	}

	err := s.courseRepository.UpdateCourse(ctx, id, update)
	if errors.Is(err, store.ErrCourseNotFound) {
		return ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseService.UpdateCourse").Int64("course_id", id).Msg("course update ended with error")
		return fmt.Errorf("course update ended with error: %w", err)
	}

	log.Info().Int64("course_id", id).Int64("user_id", user.ID).Msg("course updated")
	return nil
}

// DeleteCourse removes the course if user owns it.
func (s *courseService) DeleteCourse(ctx context.Context, user models.User, id int64) error {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.checkOwnership(ctx, user, id); err != nil {
		return err
	}

	err := s.courseRepository.DeleteCourse(ctx, id)
	if errors.Is(err, store.ErrCourseNotFound) {
		return ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseService.DeleteCourse").Int64("course_id", id).Msg("course deletion ended with error")
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	log.Info().Int64("course_id", id).Int64("user_id", user.ID).Msg("course deleted")
	return nil
}

func (s *courseService) checkOwnership(ctx context.Context, user models.User, id int64) error {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	if course.UserID != user.ID {
		logger.FromContextOr(ctx, s.logger).Warn().
			Int64("course_id", id).
			Int64("owner_id", course.UserID).
			Int64("user_id", user.ID).
			Msg("user is not the owner of the course")
		return ErrNotCourseOwner
	}

	return nil
}
