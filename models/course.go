package models

import "time"

// Course is a course owned by exactly one User.
type Course struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   *string   `json:"estimatedTime"`
	MaterialsNeeded *string   `json:"materialsNeeded"`
	UserID          int64     `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// User is the owner projection embedded in read responses.
	User CourseOwner `json:"User"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseOwner is the subset of the owning User exposed with a course.
type CourseOwner struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// NewCourse is the body of a course-creation request.
// UserID is accepted for compatibility but the owner is always the
// authenticated user.
type NewCourse struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          *int64  `json:"userId"`
}

// CourseUpdate is the body of a course-update request. Only non-nil fields
// are applied. The primary key and the owner are not part of it, so an "id"
// or "userId" in the body is ignored.
type CourseUpdate struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// IsEmpty reports whether the update carries no field to apply.
func (u CourseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.EstimatedTime == nil && u.MaterialsNeeded == nil
}
