package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/utils"
	"github.com/MKhiriev/course-api/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authHeader != "" {
		req.Header.Set(authorizationHeader, authHeader)
	}
	rec := httptest.NewRecorder()
	h.basicAuth(next).ServeHTTP(rec, req)
	return rec
}

func TestBasicAuth_Failures_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "missing header",
			err:        service.ErrMissingCredentials,
			wantStatus: http.StatusUnauthorized,
			wantReason: service.ReasonMissingCredentials,
		},
		{
			name:       "malformed header",
			header:     "Bearer token",
			err:        service.ErrMalformedCredentials,
			wantStatus: http.StatusUnauthorized,
			wantReason: service.ReasonMalformedCredentials,
		},
		{
			name:       "unknown account",
			header:     basicAuthHeader("nobody@x.com", "secret"),
			err:        fmt.Errorf("authenticating nobody@x.com: %w", service.ErrAccountNotFound),
			wantStatus: http.StatusUnauthorized,
			wantReason: service.ReasonAccountNotFound,
		},
		{
			name:       "wrong password",
			header:     basicAuthHeader("joe@smith.com", "wrong"),
			err:        service.ErrInvalidPassword,
			wantStatus: http.StatusUnauthorized,
			wantReason: service.ReasonInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			mocks.auth.EXPECT().Authenticate(gomock.Any(), tt.header).Return(models.Identity{}, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			rec := executeAuth(h, tt.header, next)

			assert.False(t, nextCalled, "protected handler must not run")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, msgAccessDenied, decodeMessage(t, rec))
			assert.Equal(t, basicAuthChallenge, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.authFailures.WithLabelValues(tt.wantReason)))
		})
	}
}

// Unknown accounts and wrong passwords must be indistinguishable to the caller.
func TestBasicAuth_AccountNotFoundAndInvalidPasswordLookAlike(t *testing.T) {
	respond := func(err error) *httptest.ResponseRecorder {
		h, mocks := newMockedHandler(t)
		mocks.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Identity{}, err)
		return executeAuth(h, basicAuthHeader("a@x.com", "p"), http.NotFoundHandler())
	}

	notFound := respond(service.ErrAccountNotFound)
	badPassword := respond(service.ErrInvalidPassword)

	assert.Equal(t, notFound.Code, badPassword.Code)
	assert.Equal(t, notFound.Body.String(), badPassword.Body.String())
	assert.Equal(t, notFound.Header().Get("WWW-Authenticate"), badPassword.Header().Get("WWW-Authenticate"))
}

func TestBasicAuth_UnexpectedError_Returns500(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Identity{}, errors.New("db is down"))

	rec := executeAuth(h, basicAuthHeader("a@x.com", "p"), http.NotFoundHandler())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalError, decodeMessage(t, rec))
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, 0, testutil.CollectAndCount(h.metrics.authFailures))
}

func TestBasicAuth_Success_StoresIdentity(t *testing.T) {
	h, mocks := newMockedHandler(t)
	identity := models.Identity{Account: models.Account{ID: 7, EmailAddress: "joe@smith.com"}}
	header := basicAuthHeader("joe@smith.com", "joepassword")
	mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(identity, nil)

	var got models.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := executeAuth(h, header, next)

	require.True(t, ok)
	assert.Equal(t, identity, got)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
