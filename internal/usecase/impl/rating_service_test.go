package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ratingServiceFixtures holds all test dependencies for rating service tests.
type ratingServiceFixtures struct {
	service   usecase.RatingUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRatingService(txManager, logger)

	return ratingServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// ledgerRepos bundles the repositories a rating transaction touches.
type ledgerRepos struct {
	userRepo       *mockRepo.MockUserRepository
	ratingRepo     *mockRepo.MockRatingRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

// expectLedgerRepos wires a transaction Execute expectation whose factory
// exposes all three repositories and propagates the callback's error.
func expectLedgerRepos(t *testing.T, txManager *mockRepo.MockTransactionManager) ledgerRepos {
	t.Helper()

	repos := ledgerRepos{
		userRepo:       mockRepo.NewMockUserRepository(t),
		ratingRepo:     mockRepo.NewMockRatingRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(repos.userRepo).Maybe()
			factory.EXPECT().RatingRepo().Return(repos.ratingRepo).Maybe()
			factory.EXPECT().RestaurantRepo().Return(repos.restaurantRepo).Maybe()

			return fn(factory)
		})

	return repos
}

func TestRatingService_Submit_RecomputesAverage(t *testing.T) {
	restaurantID := uuid.New()
	authorID := uuid.New()

	restaurant := &entity.Restaurant{ID: restaurantID, Name: "Test Kitchen", Active: true}
	author := &entity.User{ID: authorID, Name: "Test User", Active: true}

	// Sequential submissions 4, 5, 3 must persist averages 4.0, 4.5, 4.0.
	cases := []struct {
		score    float64
		existing []*entity.Rating
		want     float64
	}{
		{score: 4, existing: nil, want: 4.0},
		{score: 5, existing: []*entity.Rating{{Score: 4}}, want: 4.5},
		{score: 3, existing: []*entity.Rating{{Score: 4}, {Score: 5}}, want: 4.0},
	}

	for _, tc := range cases {
		fx := createTestRatingService(t)
		ctx := context.Background()

		repos := expectLedgerRepos(t, fx.txManager)
		repos.restaurantRepo.EXPECT().FindActiveByID(ctx, restaurantID).Return(restaurant, nil)
		repos.userRepo.EXPECT().FindByID(ctx, authorID).Return(author, nil)

		created := append(tc.existing, &entity.Rating{Score: tc.score})
		repos.ratingRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rating")).
			Run(func(ctx context.Context, rating *entity.Rating) {
				assert.Equal(t, tc.score, rating.Score)
				rating.ID = uuid.New()
				rating.CreatedAt = time.Now()
			}).
			Return(nil)
		repos.ratingRepo.EXPECT().FindByRestaurantID(ctx, restaurantID).Return(created, nil)
		repos.restaurantRepo.EXPECT().UpdateAverageRating(ctx, restaurantID, tc.want).Return(nil)

		output, err := fx.service.Submit(ctx, &usecase.SubmitRatingInput{
			AuthorID:     authorID,
			RestaurantID: restaurantID,
			Score:        tc.score,
			Comment:      "tasty",
		})

		require.NoError(t, err)
		require.NotNil(t, output)
		assert.Equal(t, tc.score, output.Score)
		assert.Equal(t, restaurantID, output.RestaurantID)
		assert.Equal(t, author.Name, output.Author.Name)
	}
}

func TestRatingService_Submit_RestaurantNotFound(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	repos := expectLedgerRepos(t, fx.txManager)
	repos.restaurantRepo.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	output, err := fx.service.Submit(ctx, &usecase.SubmitRatingInput{
		AuthorID:     uuid.New(),
		RestaurantID: restaurantID,
		Score:        4,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	// No entry is appended when the restaurant validation fails.
	repos.ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestRatingService_Submit_AuthorNotFound(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	authorID := uuid.New()

	restaurant := &entity.Restaurant{ID: restaurantID, Name: "Test Kitchen", Active: true}

	repos := expectLedgerRepos(t, fx.txManager)
	repos.restaurantRepo.EXPECT().FindActiveByID(ctx, restaurantID).Return(restaurant, nil)
	repos.userRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Submit(ctx, &usecase.SubmitRatingInput{
		AuthorID:     authorID,
		RestaurantID: restaurantID,
		Score:        4,
	})

	require.Error(t, err)
	assert.Nil(t, output)

	repos.ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestRatingService_Submit_InactiveAuthorAllowed(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	authorID := uuid.New()

	restaurant := &entity.Restaurant{ID: restaurantID, Name: "Test Kitchen", Active: true}
	author := &entity.User{ID: authorID, Name: "Dormant User", Active: false}

	repos := expectLedgerRepos(t, fx.txManager)
	repos.restaurantRepo.EXPECT().FindActiveByID(ctx, restaurantID).Return(restaurant, nil)
	repos.userRepo.EXPECT().FindByID(ctx, authorID).Return(author, nil)
	repos.ratingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(ctx context.Context, rating *entity.Rating) {
			rating.ID = uuid.New()
		}).
		Return(nil)
	repos.ratingRepo.EXPECT().
		FindByRestaurantID(ctx, restaurantID).
		Return([]*entity.Rating{{Score: 2}}, nil)
	repos.restaurantRepo.EXPECT().UpdateAverageRating(ctx, restaurantID, 2.0).Return(nil)

	output, err := fx.service.Submit(ctx, &usecase.SubmitRatingInput{
		AuthorID:     authorID,
		RestaurantID: restaurantID,
		Score:        2,
	})

	// Author existence is required, author activity is not.
	require.NoError(t, err)
	assert.Equal(t, author.Name, output.Author.Name)
}

func TestRatingService_ListForRestaurant_ReturnsViews(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	author := &entity.User{
		ID:             uuid.New(),
		Name:           "Test User",
		EmailDigest:    "email_digest",
		PasswordDigest: "password_digest",
	}
	ratings := []*entity.Rating{
		{ID: uuid.New(), Score: 4, Comment: "good", Author: author},
		{ID: uuid.New(), Score: 5, Comment: "great", Author: author},
	}

	repos := expectLedgerRepos(t, fx.txManager)
	repos.ratingRepo.EXPECT().FindByRestaurantID(ctx, restaurantID).Return(ratings, nil)

	views, err := fx.service.ListForRestaurant(ctx, restaurantID)

	require.NoError(t, err)
	require.Len(t, views, 2)

	// Views expose only the author's display name, never digests.
	assert.Equal(t, "Test User", views[0].AuthorName)
	assert.Equal(t, 4.0, views[0].Score)
	assert.Equal(t, "great", views[1].Comment)
}

func TestRatingService_ListForRestaurant_UnknownRestaurantIsEmpty(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	repos := expectLedgerRepos(t, fx.txManager)
	repos.ratingRepo.EXPECT().FindByRestaurantID(ctx, restaurantID).Return([]*entity.Rating{}, nil)

	views, err := fx.service.ListForRestaurant(ctx, restaurantID)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 0.0, meanScore(nil))
	assert.Equal(t, 4.0, meanScore([]*entity.Rating{{Score: 4}}))
	assert.Equal(t, 4.5, meanScore([]*entity.Rating{{Score: 4}, {Score: 5}}))
	assert.Equal(t, 4.0, meanScore([]*entity.Rating{{Score: 4}, {Score: 5}, {Score: 3}}))
}
