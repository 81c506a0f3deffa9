package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/service"
	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

const accessDeniedMessage = "Access Denied"

// authenticateUser is an HTTP middleware that enforces Basic Authentication.
//
// The username is matched exactly against the users' email addresses and
// the password is verified against the stored bcrypt hash by
// [service.UserService.Authenticate]. On success the user is stored in the
// request context under [utils.CurrentUserCtxKey].
//
// A missing header, an unknown email address and a wrong password all get
// the same 401 {"message":"Access Denied"} response. The reason is logged
// only.
func (h *Handler) authenticateUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		emailAddress, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Err(ErrNoBasicAuth).Msg("authentication failure")
			denyAccess(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.Authenticate(ctx, emailAddress, password)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				log.Warn().Err(err).Str("email_address", emailAddress).Msg("authentication failure")
				denyAccess(w)
				return
			}
			h.writeError(w, r, err)
			return
		}

		log.Info().Int64("user_id", user.ID).Str("email_address", user.EmailAddress).Msg("authentication successful")

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

func denyAccess(w http.ResponseWriter) {
	utils.WriteJSON(w, models.MessageResponse{Message: accessDeniedMessage}, http.StatusUnauthorized)
}
