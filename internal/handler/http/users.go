package http

import (
	"net/http"

	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
)

// getUser returns the authenticated account without its password hash.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrNoIdentity)
		return
	}

	utils.WriteJSON(w, identity.Account.Summary(), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.services.AuthService.RegisterAccount(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", account.ID).Msg("account registered")

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
