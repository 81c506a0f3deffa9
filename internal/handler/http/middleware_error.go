// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/courses-api/internal/logger"
	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/internal/validators"
	"github.com/MKhiriev/courses-api/models"
)

// appHandler is a route handler that reports failure by returning an error
// instead of writing the error response itself.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to an [http.HandlerFunc] and normalizes its errors:
//   - a [validators.ValidationError] becomes 400 {"errors": [...]} with the
//     messages in rule order;
//   - any other error becomes {"message": ...} with the status resolved by
//     [statusFromError].
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if validationErr, ok := validators.AsValidationError(err); ok {
		log.Debug().Strs("errors", validationErr.Messages).Msg("request failed validation")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := errorMessage(err, status)

	if status >= http.StatusInternalServerError {
		if h.logErrors {
			log.Err(err).Int("status", status).Msg("global error handler")
		}
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// errorMessage returns the client-facing message of err. Server errors are
// reduced to the status text.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.message
	}
	return err.Error()
}
