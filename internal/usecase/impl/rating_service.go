package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RatingUsecase {
	return &ratingService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit appends a rating entry and recomputes the restaurant's average.
//
// The append and the recomputation run in one transaction so the denormalized
// average never persists a state that excludes a committed entry. The average
// is always recomputed from the full entry set rather than updated
// incrementally; that keeps it exactly consistent with the ledger even if an
// earlier write left it stale.
func (srv *ratingService) Submit(ctx context.Context, input *usecase.SubmitRatingInput) (*usecase.SubmitRatingOutput, error) {
	srv.log(ctx).Info("Submitting rating",
		"restaurantID", input.RestaurantID,
		"authorID", input.AuthorID,
	)

	var (
		entry  *entity.Rating
		author *entity.User
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()
		userRepo := repoFactory.UserRepo()
		ratingRepo := repoFactory.RatingRepo()

		// 1. The rated restaurant must exist and be active.
		restaurant, err := restaurantRepo.FindActiveByID(ctx, input.RestaurantID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return restaurantNotFound(input.RestaurantID)
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		// 2. The author must exist. An inactive author may still be referenced;
		// whether inactive users may rate is the caller's policy, not ours.
		author, err = userRepo.FindByID(ctx, input.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return userNotFound(input.AuthorID)
			}

			return errors.Wrap(err, "failed to find author")
		}

		// 3. Append the immutable entry.
		entry = &entity.Rating{
			Score:        input.Score,
			Comment:      input.Comment,
			AuthorID:     author.ID,
			RestaurantID: restaurant.ID,
		}
		if err := ratingRepo.Create(ctx, entry); err != nil {
			return errors.WithStack(err)
		}

		// 4. Recompute the average over the full entry set, including the entry
		// just appended.
		all, err := ratingRepo.FindByRestaurantID(ctx, restaurant.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load ratings for recomputation")
		}

		return errors.WithStack(restaurantRepo.UpdateAverageRating(ctx, restaurant.ID, meanScore(all)))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit rating",
			"error", err,
			"restaurantID", input.RestaurantID,
		)

		return nil, err
	}

	srv.log(ctx).Debug("Rating submitted", "ratingID", entry.ID, "restaurantID", input.RestaurantID)

	// 5. The returned entry carries only the author's public view.
	return &usecase.SubmitRatingOutput{
		ID:           entry.ID,
		Score:        entry.Score,
		Comment:      entry.Comment,
		RestaurantID: entry.RestaurantID,
		Author:       author.Public(),
		CreatedAt:    entry.CreatedAt,
	}, nil
}

// ListForRestaurant returns the restaurant's ratings in insertion order.
// An unknown restaurant simply yields an empty list.
func (srv *ratingService) ListForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RatingView, error) {
	srv.log(ctx).Debug("Listing ratings", "restaurantID", restaurantID)

	var views []*entity.RatingView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratings, err := repoFactory.RatingRepo().FindByRestaurantID(ctx, restaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to list ratings")
		}

		views = make([]*entity.RatingView, 0, len(ratings))
		for _, rating := range ratings {
			views = append(views, rating.View())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to list ratings", "error", err, "restaurantID", restaurantID)

		return nil, err
	}

	return views, nil
}

// meanScore computes the arithmetic mean of all entry scores.
func meanScore(ratings []*entity.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	for _, rating := range ratings {
		sum += rating.Score
	}

	return sum / float64(len(ratings))
}

// restaurantNotFound builds the caller-visible not-found error naming the missing id.
func restaurantNotFound(id uuid.UUID) error {
	return domainerrors.ErrRestaurantNotFound.WithDetails("restaurant " + id.String() + " not found")
}
