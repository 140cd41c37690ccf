package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError carries every violated rule of one request, in field
// declaration order. The messages are safe to show to API callers.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// violations collects messages and turns them into a *ValidationError.
type violations []string

func (v *violations) add(msg string) {
	*v = append(*v, msg)
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}
