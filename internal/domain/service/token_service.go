package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating access tokens.
// This abstracts the details of token creation from the use cases.
//
// Issued tokens are signed with a process-held secret and carry an expiry.
// There is no revocation: a token is trusted until it expires.
type TokenService interface {
	// IssueAccessToken creates a signed, time-bound access token for the given
	// identity. The caller must have verified the identity's credentials first;
	// the issuer performs no re-verification.
	IssueAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
