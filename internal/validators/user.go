package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/courses-api/models"
)

// Password length bounds, checked on the plaintext before hashing.
const (
	PasswordMinLength = 12
	PasswordMaxLength = 20
)

// Field names of [models.NewUser] accepted by [UserValidator.Validate].
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"
)

var userRules = RuleSet[models.NewUser]{
	Model: "User",
	Fields: []FieldRules[models.NewUser]{
		{
			Field: FieldFirstName,
			Value: func(u models.NewUser) *string { return u.FirstName },
			Rules: []Rule{NotEmpty("User first name cannot be empty")},
		},
		{
			Field: FieldLastName,
			Value: func(u models.NewUser) *string { return u.LastName },
			Rules: []Rule{NotEmpty("User last name cannot be empty")},
		},
		{
			Field: FieldEmailAddress,
			Value: func(u models.NewUser) *string { return u.EmailAddress },
			Rules: []Rule{
				NotEmpty("User email cannot be empty"),
				IsEmail("User email not properly formatted"),
			},
		},
		{
			Field: FieldPassword,
			Value: func(u models.NewUser) *string { return u.Password },
			Rules: []Rule{
				NotEmpty("Password cannot be empty"),
				Len(PasswordMinLength, PasswordMaxLength,
					fmt.Sprintf("Password must be between %d and %d characters", PasswordMinLength, PasswordMaxLength)),
			},
		},
	},
}

// UserValidator validates account-creation requests.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.NewUser or *models.NewUser.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return evaluate(userRules, value, fields...)
	case *models.NewUser:
		return evaluate(userRules, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func evaluate[T any](rules RuleSet[T], obj T, fields ...string) error {
	messages, err := rules.Evaluate(obj, fields...)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}
