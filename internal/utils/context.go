// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and other common operations.
package utils

import (
	"context"
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

// UIDCtxKey is the key under which the session middleware stores the
// identity provider's account id of the signed-in user.
var UIDCtxKey = contextKey("uid")

// UserIDCtxKey is the key used to store the internal user identifier in the
// context once the account has been resolved to a local [models.User].
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUIDFromContext retrieves the external account id set by the session
// middleware. ok is false when the request carries no valid session.
func GetUIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(int64)
	return uid, ok
}

// GetUserIDFromContext retrieves the internal user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
