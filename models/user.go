package models

import "time"

// User is an account that can own courses and authenticate with Basic Auth.
// The password is held only as a bcrypt hash and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NewUser is the body of an account-creation request.
// Nil fields were absent from the request body.
type NewUser struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}

// CurrentUser is the projection of the authenticated user returned by
// GET /api/users. Username holds the email address used to authenticate.
type CurrentUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// NewCurrentUser builds the client-facing projection of u.
func NewCurrentUser(u User) CurrentUser {
	return CurrentUser{
		ID:       u.ID,
		Name:     u.FullName(),
		Username: u.EmailAddress,
	}
}
