package validators

import (
	"context"

	"github.com/MKhiriev/courses-api/models"
)

// Field names of course models accepted by [CourseValidator.Validate].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

const (
	msgEmptyTitle       = "Course title cannot be empty"
	msgEmptyDescription = "Course description cannot be empty"
)

var newCourseRules = RuleSet[models.NewCourse]{
	Model: "Course",
	Fields: []FieldRules[models.NewCourse]{
		{
			Field: FieldTitle,
			Value: func(c models.NewCourse) *string { return c.Title },
			Rules: []Rule{NotEmpty(msgEmptyTitle)},
		},
		{
			Field: FieldDescription,
			Value: func(c models.NewCourse) *string { return c.Description },
			Rules: []Rule{NotEmpty(msgEmptyDescription)},
		},
	},
}

// Updates only validate what they carry.
var courseUpdateRules = RuleSet[models.CourseUpdate]{
	Model: "Course",
	Fields: []FieldRules[models.CourseUpdate]{
		{
			Field:    FieldTitle,
			Nullable: true,
			Value:    func(c models.CourseUpdate) *string { return c.Title },
			Rules:    []Rule{NotEmpty(msgEmptyTitle)},
		},
		{
			Field:    FieldDescription,
			Nullable: true,
			Value:    func(c models.CourseUpdate) *string { return c.Description },
			Rules:    []Rule{NotEmpty(msgEmptyDescription)},
		},
	},
}

// CourseValidator validates course creation and update requests.
type CourseValidator struct{}

// NewCourseValidator constructs a CourseValidator.
func NewCourseValidator() Validator {
	return &CourseValidator{}
}

// Validate accepts models.NewCourse and models.CourseUpdate, by value or
// pointer.
func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewCourse:
		return evaluate(newCourseRules, value, fields...)
	case *models.NewCourse:
		return evaluate(newCourseRules, *value, fields...)
	case models.CourseUpdate:
		return evaluate(courseUpdateRules, value, fields...)
	case *models.CourseUpdate:
		return evaluate(courseUpdateRules, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}
