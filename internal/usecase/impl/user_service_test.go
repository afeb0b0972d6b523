package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	mockSvc "savor/internal/mocks/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockCredentialHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockCredentialHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(
		txManager,
		hasher,
		tokenService,
		logger,
	)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectUserRepo wires a transaction Execute expectation that hands the
// callback a factory exposing the given user repository and propagates the
// callback's error.
func expectUserRepo(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("password_digest", nil)
	fx.hasher.EXPECT().Hash(input.Email).Return("email_digest", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "email_digest", user.EmailDigest)
			assert.Equal(t, "password_digest", user.PasswordDigest)
			assert.True(t, user.Active)
			user.ID = uuid.New()
		}).
		Return(nil)
	expectUserRepo(t, fx.txManager, userRepo)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Name, output.User.Name)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCredentialHashFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	stored := []*entity.User{
		{ID: uuid.New(), Name: "Other", EmailDigest: "other_digest", PasswordDigest: "x", Active: true},
		{ID: userID, Name: "Test User", EmailDigest: "email_digest", PasswordDigest: "password_digest", Active: true},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	// The scan re-hashes the email against every candidate until one matches.
	fx.hasher.EXPECT().Check(input.Email, "other_digest").Return(false)
	fx.hasher.EXPECT().Check(input.Email, "email_digest").Return(true)
	fx.hasher.EXPECT().Check(input.Password, "password_digest").Return(true)

	fx.tokenService.EXPECT().IssueAccessToken(userID).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	}

	stored := []*entity.User{
		{ID: uuid.New(), Name: "Test User", EmailDigest: "email_digest", PasswordDigest: "password_digest", Active: true},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	fx.hasher.EXPECT().Check(input.Email, "email_digest").Return(true)
	fx.hasher.EXPECT().Check(input.Password, "password_digest").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "Password123!",
	}

	stored := []*entity.User{
		{ID: uuid.New(), Name: "Test User", EmailDigest: "email_digest", PasswordDigest: "password_digest", Active: true},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	fx.hasher.EXPECT().Check(input.Email, "email_digest").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	// A missing email is indistinguishable from a wrong password.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_EmptyDirectory(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{}, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_ScansLargeDirectory(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "needle@example.com",
		Password: "Password123!",
	}

	// 100 stored identities with the match in the last position: the scan
	// must re-hash against every candidate digest before it finds the user.
	const directorySize = 100
	stored := make([]*entity.User, 0, directorySize)
	for i := 0; i < directorySize-1; i++ {
		digest := "digest_" + uuid.New().String()
		stored = append(stored, &entity.User{
			ID:             uuid.New(),
			Name:           "Bystander",
			EmailDigest:    digest,
			PasswordDigest: "x",
			Active:         true,
		})
		fx.hasher.EXPECT().Check(input.Email, digest).Return(false)
	}

	userID := uuid.New()
	stored = append(stored, &entity.User{
		ID:             userID,
		Name:           "Needle",
		EmailDigest:    "needle_digest",
		PasswordDigest: "password_digest",
		Active:         true,
	})
	fx.hasher.EXPECT().Check(input.Email, "needle_digest").Return(true)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	fx.hasher.EXPECT().Check(input.Password, "password_digest").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(userID).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_TokenSignFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	userID := uuid.New()
	stored := []*entity.User{
		{ID: userID, Name: "Test User", EmailDigest: "email_digest", PasswordDigest: "password_digest", Active: true},
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindAll(ctx).Return(stored, nil)
	expectUserRepo(t, fx.txManager, userRepo)

	fx.hasher.EXPECT().Check(input.Email, "email_digest").Return(true)
	fx.hasher.EXPECT().Check(input.Password, "password_digest").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(userID).Return("", errors.New("signing key unavailable"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	// Distinct from the credential mismatch outcome.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTokenSignFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_UpdatePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdatePasswordInput{
		UserID:      userID,
		NewPassword: "NewPassword123!",
	}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_digest", nil)

	existing := &entity.User{
		ID:             userID,
		Name:           "Test User",
		EmailDigest:    "email_digest",
		PasswordDigest: "old_digest",
		Active:         true,
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "new_digest", user.PasswordDigest)
			assert.Equal(t, "email_digest", user.EmailDigest)
		}).
		Return(nil)
	expectUserRepo(t, fx.txManager, userRepo)

	err := fx.service.UpdatePassword(ctx, input)

	require.NoError(t, err)
}

func TestUserService_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdatePasswordInput{
		UserID:      uuid.New(),
		NewPassword: "NewPassword123!",
	}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_digest", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, input.UserID).Return(nil, repository.ErrUserNotFound)
	expectUserRepo(t, fx.txManager, userRepo)

	err := fx.service.UpdatePassword(ctx, input)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Deactivate_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{ID: userID, Name: "Test User", Active: true}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.False(t, user.Active)
		}).
		Return(nil)
	expectUserRepo(t, fx.txManager, userRepo)

	err := fx.service.Deactivate(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_Deactivate_AlreadyInactive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Deactivating an already inactive identity still succeeds.
	existing := &entity.User{ID: userID, Name: "Test User", Active: false}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	expectUserRepo(t, fx.txManager, userRepo)

	err := fx.service.Deactivate(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_Register_StripsCredentials(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("password_digest", nil)
	fx.hasher.EXPECT().Hash(input.Email).Return("email_digest", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	expectUserRepo(t, fx.txManager, userRepo)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)

	// The public view carries no digest fields at all; only name and metadata.
	assert.Equal(t, input.Name, output.User.Name)
	assert.True(t, output.User.Active)
}
