package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/service"
	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, courses, http.StatusOK)
	return err
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) error {
	id, err := courseID(r, http.StatusNotFound)
	if err != nil {
		return err
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), id)
	if errors.Is(err, service.ErrCourseNotFound) {
		return courseNotFound(http.StatusNotFound, chi.URLParam(r, "id"), err)
	}
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, course, http.StatusOK)
	return err
}

// createCourse answers POST /api/courses: 201 with the Location of the new
// course and no body. The authenticated user becomes the owner.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var newCourse models.NewCourse
	if err = decodeBody(r, &newCourse); err != nil {
		return err
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), user, newCourse)
	if err != nil {
		return err
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", course.ID))
	w.WriteHeader(http.StatusCreated)
	return nil
}

// updateCourse answers PUT /api/courses/{id}. A missing course and a course
// owned by someone else are both 400.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	id, err := courseID(r, http.StatusBadRequest)
	if err != nil {
		return err
	}

	var update models.CourseUpdate
	if err = decodeBody(r, &update); err != nil {
		return err
	}

	if err = h.services.CourseService.UpdateCourse(r.Context(), user, id, update); err != nil {
		return mutationError(r, id, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// deleteCourse answers DELETE /api/courses/{id} with the same error mapping
// as updateCourse.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	id, err := courseID(r, http.StatusBadRequest)
	if err != nil {
		return err
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), user, id); err != nil {
		return mutationError(r, id, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func mutationError(r *http.Request, id int64, err error) error {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return courseNotFound(http.StatusBadRequest, chi.URLParam(r, "id"), err)
	case errors.Is(err, service.ErrNotCourseOwner):
		logger.FromRequest(r).Warn().Int64("course_id", id).Msg("course change rejected, user is not the owner")
		return newStatusError(http.StatusBadRequest,
			fmt.Sprintf("Only the owner of course with id %d can change it", id), err)
	default:
		return err
	}
}
