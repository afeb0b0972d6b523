package repository

import (
	"context"
	"errors"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is a domain-specific error returned when a restaurant
// is absent or inactive.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the persistence operations for the restaurant
// catalog.
type RestaurantRepository interface {
	// FindActiveByID retrieves an active restaurant by its unique ID.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindDetailsByID retrieves an active restaurant with its address preloaded.
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindMenuByID retrieves an active restaurant with its menu items preloaded.
	FindMenuByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// List retrieves a page of active restaurants together with the total count
	// of matches. When search is non-empty it filters on restaurant name and
	// description as well as menu item name and description.
	List(ctx context.Context, page, limit int, search string) ([]*entity.Restaurant, int64, error)

	// UpdateAverageRating writes the denormalized average score of a restaurant.
	// It touches no other field.
	UpdateAverageRating(ctx context.Context, id uuid.UUID, average float64) error
}
