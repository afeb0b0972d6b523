// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/domain/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.CredentialHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.CredentialHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
//
// Both digests are computed before the row is written, each with a freshly
// generated salt. The directory cannot pre-check email uniqueness: equal
// plaintext emails hash to different digests, so only the storage layer's
// constraints can surface a conflict.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration")

	passwordDigest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrCredentialHashFailed.WrapMessage("failed to hash password")
	}

	emailDigest, err := srv.hasher.Hash(input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to hash email during registration", "error", err)

		return nil, domainerrors.ErrCredentialHashFailed.WrapMessage("failed to hash email")
	}

	newUser := &entity.User{
		Name:           input.Name,
		EmailDigest:    emailDigest,
		PasswordDigest: passwordDigest,
		Active:         true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.WithStack(repoFactory.UserRepo().Create(ctx, newUser))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", "error", err)

		return nil, err
	}

	srv.log(ctx).Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.RegisterOutput{User: newUser.Public()}, nil
}

// Login orchestrates the user login process: resolve the email through the
// digest scan, verify the password, then mint an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login")

	user, err := srv.findByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same caller-visible outcome as a wrong password.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to resolve email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordDigest) {
		srv.log(ctx).Warn("Login failed", "userID", user.ID)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		// Distinct from a credential mismatch: the client sees a server error,
		// the log carries the signing cause.
		srv.log(ctx).Error("Failed to sign access token", "error", err, "userID", user.ID)

		return nil, domainerrors.ErrTokenSignFailed.WrapMessage("failed to sign access token")
	}

	srv.log(ctx).Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user.Public(),
	}, nil
}

// findByEmail resolves a plaintext email to a user record.
//
// Emails are stored only as salted digests, so no indexed equality lookup
// exists: the scan walks every stored identity in deterministic order and
// re-hashes the candidate against each digest until one matches. O(n) with a
// bcrypt comparison per candidate is the accepted price of never persisting
// a plaintext or deterministic email. The first match is authoritative.
func (srv *userService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	var match *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, err := repoFactory.UserRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users for email scan")
		}

		for _, user := range users {
			if srv.hasher.Check(email, user.EmailDigest) {
				match = user

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return match, nil
}

// UpdatePassword replaces the password digest of an existing identity.
// The email digest is untouched.
func (srv *userService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	srv.log(ctx).Info("Updating password", "userID", input.UserID)

	passwordDigest, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", "error", err, "userID", input.UserID)

		return domainerrors.ErrCredentialHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return userNotFound(input.UserID)
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.PasswordDigest = passwordDigest

		return errors.WithStack(userRepo.Update(ctx, user))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update password", "error", err, "userID", input.UserID)

		return err
	}

	srv.log(ctx).Debug("Password updated successfully", "userID", input.UserID)

	return nil
}

// Deactivate soft-deletes an identity. The row is kept so historical ratings
// retain a valid author reference. Deactivating an already inactive identity
// still succeeds.
func (srv *userService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating user", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return userNotFound(userID)
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Active = false

		return errors.WithStack(userRepo.Update(ctx, user))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to deactivate user", "error", err, "userID", userID)

		return err
	}

	srv.log(ctx).Debug("User deactivated", "userID", userID)

	return nil
}

// userNotFound builds the caller-visible not-found error naming the missing id.
func userNotFound(id uuid.UUID) error {
	return domainerrors.ErrUserNotFound.WithDetails("user " + id.String() + " not found")
}
