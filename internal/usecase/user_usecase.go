// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordInput defines the data required to replace a user's password.
type UpdatePasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public view.
type RegisterOutput struct {
	User *entity.PublicUser `json:"user"`
}

// LoginOutput returns the minted access token after a successful login.
type LoginOutput struct {
	AccessToken string             `json:"access_token"`
	User        *entity.PublicUser `json:"user"`
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// No operation ever exposes a user's email or password digest: every returned
// view is the credential-free entity.PublicUser.
type UserUsecase interface {
	// Register creates a new identity. Email and password are stored only as
	// salted one-way digests.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and mints a signed access token.
	// Fails with an unauthorized error on any credential mismatch.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// UpdatePassword replaces the password digest of an existing identity.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	// Deactivate soft-deletes an identity. The record is retained so that
	// historical ratings keep a valid author reference. Calling it again on an
	// already inactive identity still succeeds.
	Deactivate(ctx context.Context, userID uuid.UUID) error
}
