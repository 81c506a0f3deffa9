package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/courses-api/internal/utils"
	"github.com/MKhiriev/courses-api/models"
)

const welcomeMessage = "Welcome to User/Courses API!"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	router.Get("/", h.welcome)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/users", h.handle(h.createUser))
			r.Get("/courses", h.handle(h.listCourses))
			r.Get("/courses/{id}", h.handle(h.getCourse))
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.authenticateUser)
			r.Get("/users", h.handle(h.getCurrentUser))
			r.Post("/courses", h.handle(h.createCourse))
			r.Put("/courses/{id}", h.handle(h.updateCourse))
			r.Delete("/courses/{id}", h.handle(h.deleteCourse))
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: welcomeMessage}, http.StatusOK)
}
