package postgres

import (
	"context"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Create appends a new immutable rating entry.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("rating references a missing user or restaurant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required rating information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// FindByRestaurantID retrieves all rating entries for a restaurant in insertion
// order, with the author preloaded for listing.
func (repo *ratingRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []model.RatingModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at, id").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by restaurant id")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for i := range ratingModels {
		ratings = append(ratings, toRatingDomain(&ratingModels[i]))
	}

	return ratings, nil
}

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:           data.ID,
		Score:        data.Score,
		Comment:      data.Comment,
		AuthorID:     data.AuthorID,
		RestaurantID: data.RestaurantID,
		Author:       toUserDomain(data.Author),
		CreatedAt:    data.CreatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:           data.ID,
		Score:        data.Score,
		Comment:      data.Comment,
		AuthorID:     data.AuthorID,
		RestaurantID: data.RestaurantID,
		CreatedAt:    data.CreatedAt,
	}
}
