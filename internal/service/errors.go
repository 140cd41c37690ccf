package service

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the root of every authentication failure. Callers that
// only need to know whether authentication failed should match on it; the
// wrapped reason is for logs and metrics only.
var ErrAccessDenied = errors.New("access denied")

var (
	ErrMissingCredentials   = fmt.Errorf("%w: missing credentials", ErrAccessDenied)
	ErrMalformedCredentials = fmt.Errorf("%w: malformed credentials", ErrAccessDenied)
	ErrAccountNotFound      = fmt.Errorf("%w: account not found", ErrAccessDenied)
	ErrInvalidPassword      = fmt.Errorf("%w: invalid password", ErrAccessDenied)
)

var (
	ErrOwnershipDenied       = errors.New("course is owned by another account")
	ErrNoIdentity            = errors.New("no authenticated identity")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Failure reasons reported by [FailureReason].
const (
	ReasonMissingCredentials   = "missing_credentials"
	ReasonMalformedCredentials = "malformed_credentials"
	ReasonAccountNotFound      = "account_not_found"
	ReasonInvalidPassword      = "invalid_password"
	ReasonUnknown              = "unknown"
)

// FailureReason names the cause of an authentication failure for logs and
// metrics. It must never be sent to the caller.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return ReasonMissingCredentials
	case errors.Is(err, ErrMalformedCredentials):
		return ReasonMalformedCredentials
	case errors.Is(err, ErrAccountNotFound):
		return ReasonAccountNotFound
	case errors.Is(err, ErrInvalidPassword):
		return ReasonInvalidPassword
	default:
		return ReasonUnknown
	}
}
