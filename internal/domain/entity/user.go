// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable record of a registered account.
//
// Neither the email address nor the password is ever stored in plaintext:
// both are kept only as salted one-way digests. A consequence is that the
// email column cannot be used as an equality index; looking a user up by
// email requires scanning candidates and re-hashing (see the user usecase).
type User struct {
	ID             uuid.UUID // Stable unique identifier, assigned at creation.
	Name           string    // The user's display name.
	EmailDigest    string    // Salted one-way digest of the email address, computed once at creation.
	PasswordDigest string    // Salted one-way digest of the current password, replaced wholesale on change.
	Active         bool      // Soft-delete flag. False means logically removed; the row is kept for historical ratings.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// PublicUser is the view of a User that may leave the domain boundary.
// It carries no credential material.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the credential-free view of the user. Every usecase that
// hands a user to a caller must go through this method.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
