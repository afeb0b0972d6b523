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

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// FindActiveByID retrieves an active restaurant by its unique ID.
func (repo *restaurantRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findActive(ctx, id)
}

// FindDetailsByID retrieves an active restaurant with its address preloaded.
func (repo *restaurantRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findActive(ctx, id, "Address")
}

// FindMenuByID retrieves an active restaurant with its menu items preloaded.
func (repo *restaurantRepository) FindMenuByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findActive(ctx, id, "Menu")
}

func (repo *restaurantRepository) findActive(ctx context.Context, id uuid.UUID, preloads ...string) (*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var restaurantM model.RestaurantModel
	if err := query.
		Where("id = ? AND active = ?", id, true).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// List retrieves a page of active restaurants and the total match count.
// The search term filters on restaurant name/description and menu name/description,
// matching the catalog search of the discovery frontend.
func (repo *restaurantRepository) List(ctx context.Context, page, limit int, search string) ([]*entity.Restaurant, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("restaurants.active = ?", true)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN menus ON menus.restaurant_id = restaurants.id").
			Where(
				"restaurants.name ILIKE ? OR restaurants.description ILIKE ? OR menus.name ILIKE ? OR menus.description ILIKE ?",
				pattern, pattern, pattern, pattern,
			).
			Distinct("restaurants.*")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}

	var restaurantModels []model.RestaurantModel
	if err := query.
		Order("restaurants.created_at, restaurants.id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&restaurantModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for i := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(&restaurantModels[i]))
	}

	return restaurants, total, nil
}

// UpdateAverageRating writes the denormalized average score of a restaurant.
func (repo *restaurantRepository) UpdateAverageRating(ctx context.Context, id uuid.UUID, average float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("average_rating", average)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update average rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	menu := make([]*entity.MenuItem, 0, len(data.Menu))
	for i := range data.Menu {
		menu = append(menu, toMenuItemDomain(&data.Menu[i]))
	}

	return &entity.Restaurant{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Phone:         data.Phone,
		DeliveryFee:   data.DeliveryFee,
		AverageRating: data.AverageRating,
		Active:        data.Active,
		Address:       toAddressDomain(data.Address),
		Menu:          menu,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Street:       data.Street,
		Number:       data.Number,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toMenuItemDomain converts a GORM MenuModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Type:         entity.MenuType(data.Type),
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
