package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/courses-api/internal/service"
	"github.com/MKhiriev/courses-api/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidCourseID: http.StatusNotFound,

	service.ErrUnauthenticated: http.StatusUnauthorized,
	service.ErrCourseNotFound:  http.StatusNotFound,
	service.ErrNotCourseOwner:  http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrOwnerDoesNotExist:  http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCourseNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.status
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
