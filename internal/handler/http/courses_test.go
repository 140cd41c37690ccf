package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/course-api/internal/service"
	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
	"github.com/MKhiriev/course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestListCourses_EmbedsOwner(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.courses.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{{
		ID:            1,
		Title:         "Build a Basic Bookcase",
		Description:   "High-end furniture projects are great to dream about.",
		EstimatedTime: strPtr("12 hours"),
		OwnerID:       1,
		Owner:         joe.Account.Summary(),
	}}, nil)

	rec := serve(h, http.MethodGet, "/courses", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 1,
		"title": "Build a Basic Bookcase",
		"description": "High-end furniture projects are great to dream about.",
		"estimatedTime": "12 hours",
		"materialsNeeded": null,
		"ownerId": 1,
		"owner": {"id": 1, "firstName": "Joe", "lastName": "Smith", "emailAddress": "joe@smith.com"}
	}]`, rec.Body.String())
}

func TestListCourses_EmptyIsArray(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.courses.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{}, nil)

	rec := serve(h, http.MethodGet, "/courses", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCourse_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m testServices)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "found",
			path: "/courses/1",
			setup: func(m testServices) {
				m.courses.EXPECT().GetCourse(gomock.Any(), int64(1)).Return(models.Course{ID: 1, Title: "t"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			path: "/courses/9999",
			setup: func(m testServices) {
				m.courses.EXPECT().GetCourse(gomock.Any(), int64(9999)).
					Return(models.Course{}, fmt.Errorf("getting course 9999 failed: %w", store.ErrCourseNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    msgCourseNotFound,
		},
		{name: "non numeric id", path: "/courses/abc", setup: func(testServices) {}, wantStatus: http.StatusNotFound, wantMsg: msgCourseNotFound},
		{name: "zero id", path: "/courses/0", setup: func(testServices) {}, wantStatus: http.StatusNotFound, wantMsg: msgCourseNotFound},
		{name: "negative id", path: "/courses/-3", setup: func(testServices) {}, wantStatus: http.StatusNotFound, wantMsg: msgCourseNotFound},
		{
			name: "store failure",
			path: "/courses/2",
			setup: func(m testServices) {
				m.courses.EXPECT().GetCourse(gomock.Any(), int64(2)).Return(models.Course{}, errors.New("disk I/O error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			tt.setup(mocks)

			rec := serve(h, http.MethodGet, tt.path, "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			}
		})
	}
}

func TestCreateCourse_Created(t *testing.T) {
	h, mocks := newMockedHandler(t)
	header := basicAuthHeader("joe@smith.com", "joepassword")
	mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(joe, nil)
	mocks.courses.EXPECT().CreateCourse(gomock.Any(), joe, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Identity, req models.CourseRequest) (models.Course, error) {
			require.NotNil(t, req.Title)
			assert.Equal(t, "New Course", *req.Title)
			return models.Course{ID: 42}, nil
		},
	)

	rec := serve(h, http.MethodPost, "/courses", header,
		strings.NewReader(`{"title":"New Course","description":"My course description","userId":99}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/courses/42", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
}

func TestCreateCourse_ValidationError(t *testing.T) {
	h, mocks := newMockedHandler(t)
	header := basicAuthHeader("joe@smith.com", "joepassword")
	mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(joe, nil)
	mocks.courses.EXPECT().CreateCourse(gomock.Any(), joe, gomock.Any()).
		Return(models.Course{}, &validators.ValidationError{Violations: []string{validators.MsgTitleRequired, validators.MsgDescriptionRequired}})

	rec := serve(h, http.MethodPost, "/courses", header, strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{validators.MsgTitleRequired, validators.MsgDescriptionRequired}, decodeErrors(t, rec))
}

func TestCreateCourse_InvalidJSON(t *testing.T) {
	h, mocks := newMockedHandler(t)
	header := basicAuthHeader("joe@smith.com", "joepassword")
	mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(joe, nil)

	rec := serve(h, http.MethodPost, "/courses", header, strings.NewReader(`not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{msgInvalidJSON}, decodeErrors(t, rec))
}

func TestUpdateCourse_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
		wantErrors []string
	}{
		{name: "owner", wantStatus: http.StatusNoContent},
		{name: "not owner", serviceErr: service.ErrOwnershipDenied, wantStatus: http.StatusForbidden, wantMsg: msgOwnershipDenied},
		{
			name:       "missing",
			serviceErr: fmt.Errorf("getting course 5 failed: %w", store.ErrCourseNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    msgCourseNotFound,
		},
		{
			name:       "invalid",
			serviceErr: &validators.ValidationError{Violations: []string{validators.MsgTitleEmpty}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{validators.MsgTitleEmpty},
		},
		{
			name:       "not null constraint",
			serviceErr: fmt.Errorf("updating course 5 failed: %w", &store.ConstraintError{Table: "courses", Column: "description"}),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{validators.MsgDescriptionRequired},
		},
		{name: "unexpected", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			header := basicAuthHeader("joe@smith.com", "joepassword")
			mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(joe, nil)
			mocks.courses.EXPECT().UpdateCourse(gomock.Any(), joe, int64(5), gomock.Any()).Return(tt.serviceErr)

			rec := serve(h, http.MethodPut, "/courses/5", header, strings.NewReader(`{"title":"t","description":"d"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			switch {
			case tt.wantMsg != "":
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			case tt.wantErrors != nil:
				assert.Equal(t, tt.wantErrors, decodeErrors(t, rec))
			default:
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestDeleteCourse_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		callsSvc   bool
		wantStatus int
	}{
		{name: "owner", path: "/courses/5", callsSvc: true, wantStatus: http.StatusNoContent},
		{name: "not owner", path: "/courses/5", serviceErr: service.ErrOwnershipDenied, callsSvc: true, wantStatus: http.StatusForbidden},
		{name: "missing", path: "/courses/5", serviceErr: store.ErrCourseNotFound, callsSvc: true, wantStatus: http.StatusNotFound},
		{name: "bad id", path: "/courses/five", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			header := basicAuthHeader("joe@smith.com", "joepassword")
			mocks.auth.EXPECT().Authenticate(gomock.Any(), header).Return(joe, nil)
			if tt.callsSvc {
				mocks.courses.EXPECT().DeleteCourse(gomock.Any(), joe, int64(5)).Return(tt.serviceErr)
			}

			rec := serve(h, http.MethodDelete, tt.path, header, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCourseIDFromRequest(t *testing.T) {
	// exercised through the router so chi fills the URL params
	h, mocks := newMockedHandler(t)
	mocks.courses.EXPECT().GetCourse(gomock.Any(), int64(9223372036854775807)).Return(models.Course{}, store.ErrCourseNotFound)

	rec := serve(h, http.MethodGet, "/courses/9223372036854775807", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/courses/9223372036854775808", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
