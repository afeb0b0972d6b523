package postgres

import (
	"testing"
	"time"

	"savor/internal/domain/entity"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapping_RoundTripPreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	user := &entity.User{
		ID:             uuid.New(),
		Name:           "Test User",
		EmailDigest:    "email_digest",
		PasswordDigest: "password_digest",
		Active:         true,
		CreatedAt:      createdAt,
	}

	// Update persists via Save, which writes every column. A zero CreatedAt
	// in the model would overwrite the stored creation timestamp and shuffle
	// the directory's scan order.
	userM := fromUserDomain(user)
	require.NotNil(t, userM)
	assert.Equal(t, createdAt, userM.CreatedAt)

	back := toUserDomain(userM)
	require.NotNil(t, back)
	assert.Equal(t, createdAt, back.CreatedAt)
	assert.Equal(t, user.EmailDigest, back.EmailDigest)
	assert.Equal(t, user.PasswordDigest, back.PasswordDigest)
}

func TestUserMapping_PasswordChangeKeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	stored := &model.UserModel{
		ID:             uuid.New(),
		Name:           "Test User",
		EmailDigest:    "email_digest",
		PasswordDigest: "old_digest",
		Active:         true,
		CreatedAt:      createdAt,
	}

	// The update flow: read, mutate one field, map back for Save.
	user := toUserDomain(stored)
	user.PasswordDigest = "new_digest"

	updated := fromUserDomain(user)
	assert.Equal(t, "new_digest", updated.PasswordDigest)
	assert.Equal(t, createdAt, updated.CreatedAt)
}

func TestRatingMapping_PreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	rating := &entity.Rating{
		ID:           uuid.New(),
		Score:        4.5,
		Comment:      "good",
		AuthorID:     uuid.New(),
		RestaurantID: uuid.New(),
		CreatedAt:    createdAt,
	}

	ratingM := fromRatingDomain(rating)
	require.NotNil(t, ratingM)
	assert.Equal(t, createdAt, ratingM.CreatedAt)

	back := toRatingDomain(ratingM)
	require.NotNil(t, back)
	assert.Equal(t, createdAt, back.CreatedAt)
	assert.Equal(t, rating.Score, back.Score)
}

func TestMappers_NilSafety(t *testing.T) {
	assert.Nil(t, fromUserDomain(nil))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromRatingDomain(nil))
	assert.Nil(t, toRatingDomain(nil))
	assert.Nil(t, toRestaurantDomain(nil))
}
