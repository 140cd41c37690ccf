package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrMissingLocation     = errors.New("response has no usable Location header")
)

// APIError is a non-2xx answer of the course API.
type APIError struct {
	StatusCode int
	// Messages holds the "errors" list of a 400 response or the single
	// "message" of any other error response.
	Messages []string

	err error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s (http %d)", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.err, e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	return e.err
}
