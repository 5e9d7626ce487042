// Package auth provides the credential primitives: bcrypt password hashing
// and signed JWT session tokens.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing signed session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token carrying the account's
	// ID and email. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, accountID uuid.UUID, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the session token claims. The token carries exactly the
// account ID and email.
type Claims struct {
	// AccountID is the unique identifier of the company account the token
	// was issued for.
	AccountID uuid.UUID `json:"id"`

	// Email is the account's email at issuance time.
	Email string `json:"email"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
