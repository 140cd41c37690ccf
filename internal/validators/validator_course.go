package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-api/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

var courseFields = []string{FieldTitle, FieldDescription}

type CourseValidator struct{}

func NewCourseValidator() Validator {
	return &CourseValidator{}
}

// Validate checks a course create or update request. estimatedTime and
// materialsNeeded are optional and never produce violations.
func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourseRequest:
		return v.validateCourse(value, fields...)
	case *models.CourseRequest:
		return v.validateCourse(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CourseValidator) validateCourse(req models.CourseRequest, fields ...string) error {
	selected, err := selectFields(courseFields, fields)
	if err != nil {
		return err
	}

	var errs violations
	for _, field := range selected {
		switch field {
		case FieldTitle:
			checkRequired(&errs, req.Title, MsgTitleRequired, MsgTitleEmpty)
		case FieldDescription:
			checkRequired(&errs, req.Description, MsgDescriptionRequired, MsgDescriptionEmpty)
		}
	}

	return errs.err()
}
