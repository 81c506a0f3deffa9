package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/courses-api/internal/config"
	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/store"
	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/internal/validators"
	"github.com/MKhiriev/courses-api/models"
)

// userService is the concrete implementation of UserService.
// It validates account-creation requests, hashes passwords with bcrypt and
// verifies Basic Auth credentials against the stored hash.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// bcryptCost is the work factor for newly hashed passwords. Verification
	// reads the cost from the stored hash, so changing it does not lock out
	// existing users.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser validates user, hashes the password and stores the account.
//
// Returns the persisted user or:
//   - a *validators.ValidationError listing every failed field rule;
//   - a *validators.ValidationError "emailAddress must be unique" when the
//     email address is already taken;
//   - a wrapped storage error otherwise.
func (s *userService) RegisterUser(ctx context.Context, user models.NewUser) (models.User, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("user validation failed")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(*user.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, models.User{
		FirstName:    *user.FirstName,
		LastName:     *user.LastName,
		EmailAddress: *user.EmailAddress,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, validators.NewValidationError(msgEmailNotUnique)
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Authenticate returns the user whose email address matches exactly and
// whose stored hash matches password. Any rejection is reported as
// ErrUnauthenticated wrapping the reason.
func (s *userService) Authenticate(ctx context.Context, emailAddress, password string) (models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, emailAddress)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrUnknownEmail)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := utils.ComparePassword(user.PasswordHash, password)
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Int64("user_id", user.ID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !ok {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrWrongPassword)
	}

	return user, nil
}
