package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/courses-api/internal/service"
	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

const invalidJSONMessage = "Invalid JSON was passed"

// decodeBody reads a JSON request body into dst. An empty body leaves dst
// untouched, the same as an empty object.
func decodeBody(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return newStatusError(http.StatusBadRequest, invalidJSONMessage, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
}

// courseID parses the {id} path segment. A value that cannot name a course
// is reported with notFoundStatus, like an id no course has.
func courseID(r *http.Request, notFoundStatus int) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, courseNotFound(notFoundStatus, raw, ErrInvalidCourseID)
	}
	return id, nil
}

func courseNotFound(status int, rawID string, err error) error {
	return newStatusError(status, fmt.Sprintf("Course with id %s does not exist", rawID), err)
}

// currentUser returns the user stored by authenticateUser.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, newStatusError(http.StatusUnauthorized, accessDeniedMessage, service.ErrUnauthenticated)
	}
	return user, nil
}
