package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	var req models.CourseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), identity, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	location := fmt.Sprintf("/courses/%d", course.ID)
	log.Debug().Str("location", location).Send()

	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.CourseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err = h.services.CourseService.UpdateCourse(r.Context(), identity, courseID, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), identity, courseID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// courseIDFromRequest reads the {id} path parameter. Anything that is not a
// positive integer cannot name a course and is reported as not found.
func courseIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCourseID, raw)
	}
	return id, nil
}

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value so that validation reports the missing fields. It writes the
// 400 response itself and returns false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.FromRequest(r).Err(err).Msg(msgInvalidJSON)
	utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{msgInvalidJSON}}, http.StatusBadRequest)
	return false
}
