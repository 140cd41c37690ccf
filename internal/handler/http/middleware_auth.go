package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

// basicAuth is an HTTP middleware that enforces HTTP Basic authentication.
//
// It passes the raw "Authorization" header to [service.AuthService.Authenticate]
// and, on success, stores the resolved identity in the request context via
// [utils.WithIdentity] before delegating to the next handler.
//
// Every authentication failure is answered with the same 401 body and a
// WWW-Authenticate challenge. The failure reason goes to the log and the
// auth failure counter only. Errors that are not authentication failures
// (store outage, corrupt hash) are answered with 500.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, err := h.services.AuthService.Authenticate(r.Context(), r.Header.Get(authorizationHeader))
		if err != nil {
			if errors.Is(err, service.ErrAccessDenied) {
				reason := service.FailureReason(err)
				h.metrics.authFailures.WithLabelValues(reason).Inc()
				log.Warn().Str("reason", reason).Str("uri", r.RequestURI).Msg("authentication failed")

				w.Header().Set("WWW-Authenticate", basicAuthChallenge)
				utils.WriteJSON(w, models.MessageResponse{Message: msgAccessDenied}, http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("unexpected error during authentication")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInternalError}, http.StatusInternalServerError)
			return
		}

		log.Debug().Int64("account_id", identity.AccountID()).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}
