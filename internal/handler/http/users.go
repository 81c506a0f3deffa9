package http

import (
	"net/http"

	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

// getCurrentUser answers GET /api/users with the projection of the
// authenticated user.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.NewCurrentUser(user), http.StatusOK)
	return err
}

// createUser answers POST /api/users: 201, Location "/" and no body.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var newUser models.NewUser
	if err := decodeBody(r, &newUser); err != nil {
		return err
	}

	if _, err := h.services.UserService.RegisterUser(r.Context(), newUser); err != nil {
		return err
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
	return nil
}
