// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"savor/config"
	"savor/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
//
// bcrypt output is self-describing: the cost factor and the salt are embedded
// in the digest, so verification needs no separately stored salt. The same
// hasher covers both password digests and email digests.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewBcryptHasher(cfg *config.Config) service.CredentialHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted digest from a plaintext value using bcrypt.
// bcrypt generates a fresh salt internally on every call.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	return string(bytes), err
}

// Check compares a plaintext value with a bcrypt digest.
// bcrypt.CompareHashAndPassword is constant-time on mismatch.
func (h *bcryptHasher) Check(plaintext, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	// err is nil if the value and digest match.
	return err == nil
}
