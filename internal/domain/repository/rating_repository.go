package repository

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the persistence operations for rating entries.
// Entries are append-only: there is no update or delete.
type RatingRepository interface {
	// Create appends a new immutable rating entry.
	Create(ctx context.Context, rating *entity.Rating) error

	// FindByRestaurantID retrieves all rating entries for a restaurant in
	// insertion order, with the author preloaded.
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error)
}
