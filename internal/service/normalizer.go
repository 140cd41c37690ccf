package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/course-api/internal/store"
	"github.com/MKhiriev/course-api/internal/validators"
)

// NormalizeError turns a constraint failure into the ordered list of
// messages returned to the caller. It reports false for every other error,
// which must then be handled as unexpected.
func NormalizeError(err error) ([]string, bool) {
	if err == nil {
		return nil, false
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return slices.Clone(validationErr.Violations), true
	}

	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return []string{validators.MsgEmailTaken}, true
	}

	var constraintErr *store.ConstraintError
	if errors.As(err, &constraintErr) {
		msg := validators.RequiredMessage(constraintErr.Column)
		if msg == "" {
			msg = fmt.Sprintf("%s is required", constraintErr.Column)
		}
		return []string{msg}, true
	}

	return nil, false
}
