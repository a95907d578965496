// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultSearchLimit = 20

// restaurantRow is the flat scan target for list queries that join the
// region tables for localized display names.
type restaurantRow struct {
	ID                 int64
	NameZh             string
	NameEn             string
	Address            string
	State              string
	Area               string
	Country            string
	Lat                float64
	Lng                float64
	PriceLevel         int
	Recommended        *bool
	RecommendedDishes  string
	Description        string
	Phones             datatypes.JSON
	TimeSlots          datatypes.JSON
	RestDays           datatypes.JSON
	BusinessHours      datatypes.JSON
	Photos             datatypes.JSON
	CoverPhoto         string
	VegetarianType     string
	Status             string
	VerificationStatus string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	StateName          string
	StateNameZh        string
	AreaName           string
	AreaNameZh         string
}

const restaurantJoinSelect = "restaurants.*, " +
	"states.name AS state_name, states.name_zh AS state_name_zh, " +
	"areas.name AS area_name, areas.name_zh AS area_name_zh"

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

// Search returns a page of restaurants matching the query plus the total
// count under the same predicates.
func (repo *restaurantRepository) Search(ctx context.Context, query *repository.RestaurantSearchQuery) ([]*entity.Restaurant, int64, error) {
	clauses := buildSearchClauses(query)

	countTx := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})
	for _, c := range clauses {
		countTx = countTx.Where(c.expr, c.args...)
	}

	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	listTx := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select(restaurantJoinSelect).
		Joins("LEFT JOIN states ON states.name = restaurants.state").
		Joins("LEFT JOIN areas ON areas.name = restaurants.area")
	for _, c := range clauses {
		listTx = listTx.Where(c.expr, c.args...)
	}

	var rows []restaurantRow
	if err := listTx.
		Order(buildOrderClause(query)).
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(rows))
	for i := range rows {
		restaurants = append(restaurants, toRestaurantDomain(&rows[i]))
	}

	return restaurants, total, nil
}

// FindByID retrieves a restaurant with its joined region display names.
func (repo *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	var row restaurantRow

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select(restaurantJoinSelect).
		Joins("LEFT JOIN states ON states.name = restaurants.state").
		Joins("LEFT JOIN areas ON areas.name = restaurants.area").
		Where("restaurants.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find restaurant by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRestaurantNotFound
	}

	return toRestaurantDomain(&row), nil
}

// Create persists a new restaurant listing.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies an existing restaurant listing.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).Save(restaurantM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// UpdateStatus changes the moderation status of a listing.
func (repo *restaurantRepository) UpdateStatus(ctx context.Context, id int64, status entity.RestaurantStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// SuggestNames returns active restaurant display names matching the keyword,
// localized name preferred, each with its region.
func (repo *restaurantRepository) SuggestNames(ctx context.Context, keyword string, limit int) ([]repository.RestaurantNameSuggestion, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(keyword)) + "%"

	type nameRow struct {
		Name  string
		State string
		Area  string
	}

	var rows []nameRow
	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select("COALESCE(NULLIF(name_zh, ''), name_en) AS name, state, area").
		Where("status = ?", string(entity.RestaurantActive)).
		Where("(name_zh ILIKE ? OR name_en ILIKE ?)", pattern, pattern).
		Order("id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest restaurant names")
	}

	suggestions := make([]repository.RestaurantNameSuggestion, 0, len(rows))
	for _, row := range rows {
		suggestions = append(suggestions, repository.RestaurantNameSuggestion{
			Name:  row.Name,
			State: row.State,
			Area:  row.Area,
		})
	}

	return suggestions, nil
}

// FindDishTexts returns raw recommended-dish strings from active rows whose
// dishes match the keyword. Splitting and ranking happen in the use case.
func (repo *restaurantRepository) FindDishTexts(ctx context.Context, keyword string, limit int) ([]string, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(keyword)) + "%"

	var texts []string
	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("status = ?", string(entity.RestaurantActive)).
		Where("recommended_dishes ILIKE ?", pattern).
		Order("id DESC").
		Limit(limit).
		Pluck("recommended_dishes", &texts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dish texts")
	}

	return texts, nil
}

// AdminList returns a moderation page across all statuses.
func (repo *restaurantRepository) AdminList(ctx context.Context, query *repository.AdminRestaurantQuery) ([]*entity.Restaurant, int64, error) {
	buildTx := func(tx *gorm.DB) *gorm.DB {
		if query.Status != "" {
			tx = tx.Where("status = ?", string(query.Status))
		}
		if query.VerificationStatus != "" {
			tx = tx.Where("verification_status = ?", query.VerificationStatus)
		}
		if query.StateName != "" {
			tx = tx.Where("state = ?", query.StateName)
		}
		if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
			pattern := "%" + escapeLike(keyword) + "%"
			tx = tx.Where("(name_zh ILIKE ? OR name_en ILIKE ? OR address ILIKE ?)", pattern, pattern, pattern)
		}

		return tx
	}

	var total int64
	if err := buildTx(repo.db.WithContext(ctx).Model(&model.RestaurantModel{})).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants for moderation")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	var rows []restaurantRow
	if err := buildTx(repo.db.WithContext(ctx).Model(&model.RestaurantModel{})).
		Select(restaurantJoinSelect).
		Joins("LEFT JOIN states ON states.name = restaurants.state").
		Joins("LEFT JOIN areas ON areas.name = restaurants.area").
		Order(buildAdminOrderClause()).
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants for moderation")
	}

	restaurants := make([]*entity.Restaurant, 0, len(rows))
	for i := range rows {
		restaurants = append(restaurants, toRestaurantDomain(&rows[i]))
	}

	return restaurants, total, nil
}

// CountByStatus returns the number of listings with the given status.
func (repo *restaurantRepository) CountByStatus(ctx context.Context, status entity.RestaurantStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants by status")
	}

	return count, nil
}

// CountAll returns the total number of listings.
func (repo *restaurantRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}

	return count, nil
}

// CountByState aggregates active listings per state for the stats endpoint.
func (repo *restaurantRepository) CountByState(ctx context.Context, country string) ([]entity.StatCount, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select("state AS name, COUNT(*) AS count").
		Where("status = ?", string(entity.RestaurantActive))
	if country != "" {
		tx = tx.Where("country = ?", country)
	}

	var stats []entity.StatCount
	if err := tx.Group("state").Order("count DESC").Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants by state")
	}

	return stats, nil
}

// CountByCategory aggregates active listings per vegetarian type.
func (repo *restaurantRepository) CountByCategory(ctx context.Context) ([]entity.StatCount, error) {
	var stats []entity.StatCount

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select("vegetarian_type AS name, COUNT(*) AS count").
		Where("status = ?", string(entity.RestaurantActive)).
		Group("vegetarian_type").
		Order("count DESC").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants by category")
	}

	return stats, nil
}

// CountByVerification aggregates listings per verification status.
func (repo *restaurantRepository) CountByVerification(ctx context.Context) ([]entity.StatCount, error) {
	var stats []entity.StatCount

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Select("verification_status AS name, COUNT(*) AS count").
		Group("verification_status").
		Order("count DESC").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants by verification status")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a joined scan row to a domain Restaurant entity.
func toRestaurantDomain(row *restaurantRow) *entity.Restaurant {
	if row == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:                 row.ID,
		NameZh:             row.NameZh,
		NameEn:             row.NameEn,
		Address:            row.Address,
		State:              row.State,
		Area:               row.Area,
		Country:            row.Country,
		Lat:                row.Lat,
		Lng:                row.Lng,
		PriceLevel:         row.PriceLevel,
		Recommended:        row.Recommended != nil && *row.Recommended,
		RecommendedDishes:  row.RecommendedDishes,
		Description:        row.Description,
		Phones:             decodeStringSlice(row.Phones),
		TimeSlots:          decodeStringSlice(row.TimeSlots),
		RestDays:           decodeStringSlice(row.RestDays),
		BusinessHours:      decodeStringMap(row.BusinessHours),
		Photos:             decodeStringSlice(row.Photos),
		CoverPhoto:         row.CoverPhoto,
		VegetarianType:     row.VegetarianType,
		Status:             entity.RestaurantStatus(row.Status),
		VerificationStatus: row.VerificationStatus,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		StateName:          row.StateName,
		StateNameZh:        row.StateNameZh,
		AreaName:           row.AreaName,
		AreaNameZh:         row.AreaNameZh,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	recommended := data.Recommended

	return &model.RestaurantModel{
		ID:                 data.ID,
		NameZh:             data.NameZh,
		NameEn:             data.NameEn,
		Address:            data.Address,
		State:              data.State,
		Area:               data.Area,
		Country:            data.Country,
		Lat:                data.Lat,
		Lng:                data.Lng,
		PriceLevel:         data.PriceLevel,
		Recommended:        &recommended,
		RecommendedDishes:  data.RecommendedDishes,
		Description:        data.Description,
		Phones:             encodeStringSlice(data.Phones),
		TimeSlots:          encodeStringSlice(data.TimeSlots),
		RestDays:           encodeStringSlice(data.RestDays),
		BusinessHours:      encodeStringMap(data.BusinessHours),
		Photos:             encodeStringSlice(data.Photos),
		CoverPhoto:         data.CoverPhoto,
		VegetarianType:     data.VegetarianType,
		Status:             string(data.Status),
		VerificationStatus: data.VerificationStatus,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func decodeStringSlice(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}

	return values
}

func encodeStringSlice(values []string) datatypes.JSON {
	if values == nil {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}

	return datatypes.JSON(data)
}

func decodeStringMap(data datatypes.JSON) map[string]string {
	if len(data) == 0 {
		return nil
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}

	return values
}

func encodeStringMap(values map[string]string) datatypes.JSON {
	if values == nil {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}

	return datatypes.JSON(data)
}
