package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/course-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCourseValidator_Valid(t *testing.T) {
	v := NewCourseValidator()

	req := models.CourseRequest{Title: ptr("New Course"), Description: ptr("My course description")}
	assert.NoError(t, v.Validate(context.Background(), req))

	// optional fields may be absent or empty
	req.EstimatedTime = ptr("")
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestCourseValidator_Violations(t *testing.T) {
	tests := []struct {
		name string
		req  models.CourseRequest
		want []string
	}{
		{
			name: "both absent",
			req:  models.CourseRequest{},
			want: []string{MsgTitleRequired, MsgDescriptionRequired},
		},
		{
			name: "both empty",
			req:  models.CourseRequest{Title: ptr(""), Description: ptr(" ")},
			want: []string{MsgTitleEmpty, MsgDescriptionEmpty},
		},
		{
			name: "empty title only",
			req:  models.CourseRequest{Title: ptr(""), Description: ptr("d")},
			want: []string{MsgTitleEmpty},
		},
		{
			name: "absent description only",
			req:  models.CourseRequest{Title: ptr("t")},
			want: []string{MsgDescriptionRequired},
		},
	}

	v := NewCourseValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			assert.Equal(t, tt.want, violationsOf(t, err))
		})
	}
}

func TestCourseValidator_UnsupportedType(t *testing.T) {
	err := NewCourseValidator().Validate(context.Background(), "course")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
