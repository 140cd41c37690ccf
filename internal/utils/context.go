// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/course-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated identity in the
// context. Prefer WithIdentity and IdentityFromContext over using it directly.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated identity.
//
// Example usage:
//
//	ctx = utils.WithIdentity(ctx, identity)
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // request did not pass the authentication middleware
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
