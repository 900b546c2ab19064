// Package auth provides token issuance/validation and password hashing.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrMissingToken is returned when no token was supplied with the request.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature, or carries unexpected claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's validity window has not started.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
