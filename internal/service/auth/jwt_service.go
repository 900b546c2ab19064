package auth

import (
	"context"
	"time"
)

// Claims holds the validated contents of an access token.
type Claims struct {
	UserID    int64
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService defines the interface for issuing and validating access tokens.
// Validation is a pure function from an opaque token string to either the
// embedded user identity or an auth error.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user ID as a
	// verifiable claim.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates an access token and returns its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
