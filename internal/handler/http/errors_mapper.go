package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap lists the service and store errors that reach the caller
// with a dedicated status. Everything else is a 500.
var errorStatusMap = map[error]errorResponse{
	store.ErrCourseNotFound:    {http.StatusNotFound, msgCourseNotFound},
	ErrInvalidCourseID:         {http.StatusNotFound, msgCourseNotFound},
	service.ErrOwnershipDenied: {http.StatusForbidden, msgOwnershipDenied},
	service.ErrAccessDenied:    {http.StatusUnauthorized, msgAccessDenied},
	service.ErrNoIdentity:      {http.StatusUnauthorized, msgAccessDenied},
}

func statusFromError(err error) (errorResponse, bool) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp, true
		}
	}
	return errorResponse{http.StatusInternalServerError, msgInternalError}, false
}

// writeServiceError turns an error returned by the service layer into a
// response. Validation and constraint failures become 400 with the message
// list, known errors get their mapped status and anything else is logged
// and answered with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if messages, ok := service.NormalizeError(err); ok {
		log.Debug().Strs("errors", messages).Msg("request rejected by validation")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: messages}, http.StatusBadRequest)
		return
	}

	resp, known := statusFromError(err)
	if !known {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Send()
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", basicAuthChallenge)
	}
	utils.WriteJSON(w, models.MessageResponse{Message: resp.message}, resp.status)
}
