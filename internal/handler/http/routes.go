package http

import (
	"net/http"

	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())

		r.Post("/users", h.createUser)

		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)
	})

	// routes with Basic authorization
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Get("/users", h.getUser)

		r.Post("/courses", h.createCourse)
		r.Put("/courses/{id}", h.updateCourse)
		r.Delete("/courses/{id}", h.deleteCourse)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: msgWelcome}, http.StatusOK)
}
