package usecase

import (
	"context"
	"time"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitRatingInput defines the data required to submit a rating.
// Score range is validated at the delivery boundary, not here.
type SubmitRatingInput struct {
	AuthorID     uuid.UUID
	RestaurantID uuid.UUID
	Score        float64
	Comment      string
}

// SubmitRatingOutput returns the created entry with the author's sensitive
// fields stripped.
type SubmitRatingOutput struct {
	ID           uuid.UUID          `json:"id"`
	Score        float64            `json:"score"`
	Comment      string             `json:"comment"`
	RestaurantID uuid.UUID          `json:"restaurant_id"`
	Author       *entity.PublicUser `json:"author"`
	CreatedAt    time.Time          `json:"created_at"`
}

// RatingUsecase defines the interface for the rating ledger.
type RatingUsecase interface {
	// Submit appends an immutable rating entry and recomputes the restaurant's
	// denormalized average over the full entry set.
	Submit(ctx context.Context, input *SubmitRatingInput) (*SubmitRatingOutput, error)

	// ListForRestaurant returns the restaurant's ratings in insertion order.
	// Each entry exposes only the author's display name.
	ListForRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RatingView, error)
}
