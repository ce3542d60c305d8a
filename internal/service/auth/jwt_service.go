package auth

import (
	"context"
	"time"
)

// Claims holds the validated contents of an access token.
type Claims struct {
	// Subject identifies the token holder. This is a single-user system,
	// so the subject is always the configured owner subject.
	Subject string

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}

// JWTService defines the interface for issuing and validating the access
// tokens that guard the API. The tracker is single-user: a successful
// password login yields one token, there is no user table.
type JWTService interface {
	// GenerateToken creates a signed access token for the owner.
	GenerateToken(ctx context.Context) (string, error)

	// ValidateToken verifies a token's signature and time claims and
	// returns its claims. Returns ErrExpiredToken, ErrTokenNotYetValid, or
	// ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
