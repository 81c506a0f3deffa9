// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors of the HTTP layer. They are logged and never written to the
// response as is.
var (
	// ErrNoBasicAuth is returned when the request carries no "Authorization"
	// header or the header is not a well-formed Basic Auth value.
	ErrNoBasicAuth = errors.New("auth header not found")

	// ErrInvalidCourseID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidCourseID = errors.New("invalid course id")

	// ErrPanicRecovered wraps the value recovered from a panicking handler.
	ErrPanicRecovered = errors.New("panic recovered")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json body")
)

// statusError is an error that carries the HTTP status and the message the
// client should receive. The wrapped error is only logged.
type statusError struct {
	status  int
	message string
	err     error
}

func newStatusError(status int, message string, err error) *statusError {
	return &statusError{status: status, message: message, err: err}
}

func (e *statusError) Error() string {
	if e.err == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.err)
}

func (e *statusError) Unwrap() error {
	return e.err
}
