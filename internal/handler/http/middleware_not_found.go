// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

const routeNotFoundMessage = "Route Not Found"

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi answers a known path requested with an unsupported method with 405.
// The API reports every request it has no handler for the same way, so an
// unsupported method on a known path gets the same 404 body as an unknown
// path and does not reveal which routes exist.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: routeNotFoundMessage}, http.StatusNotFound)
}
