package service

import "errors"

var (
	// ErrUnauthenticated is returned by UserService.Authenticate for every
	// rejected credential pair. The wrapped reason is for diagnostics only.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrUnknownEmail  = errors.New("no user with such email address")
	ErrWrongPassword = errors.New("wrong password")

	ErrCourseNotFound = errors.New("course does not exist")
	ErrNotCourseOwner = errors.New("user is not the owner of the course")
)

const (
	msgEmailNotUnique   = "emailAddress must be unique"
	msgOwnerNotExistFmt = "User with id %d does not exist"
)
