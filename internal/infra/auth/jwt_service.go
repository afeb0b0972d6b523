package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"savor/config"
	"savor/internal/domain/service"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Process-held secret for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Token != nil && cfg.Token.AccessTTL > 0 {
		ttl = cfg.Token.AccessTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// IssueAccessToken creates a signed, expiring access token carrying the
// identity's id as the subject claim.
func (s *jwtService) IssueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a token string and returns
// its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	claims := &service.Claims{UserID: userID}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}
	claims.Subject = subject

	return claims, nil
}
