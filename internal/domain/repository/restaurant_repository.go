// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// SortMode orders search results.
type SortMode string

const (
	SortDefault     SortMode = ""
	SortDistance    SortMode = "distance"
	SortNewest      SortMode = "newest"
	SortRecommended SortMode = "recommended"
)

// RestaurantSearchQuery carries every filter the search endpoint accepts.
// Zero values mean "not filtered". The geo anchor is considered present only
// when HasPoint reports true; coordinates near (0,0) are treated as absent.
type RestaurantSearchQuery struct {
	Keyword     string
	StateName   string
	AreaName    string
	PriceLevel  int
	PriceMin    int
	PriceMax    int
	Recommended *bool
	TimeSlot    entity.TimeSlot
	OpenOn      string // weekday name, matched against rest days
	Tags        []string

	Lat     float64
	Lng     float64
	RadiusM float64

	Sort   SortMode
	Page   int
	Limit  int
	Status entity.RestaurantStatus
}

// HasPoint reports whether the query carries a usable geo anchor. Clients that
// fail to acquire a fix send coordinates near the null island, which must not
// anchor a distance sort.
func (q *RestaurantSearchQuery) HasPoint() bool {
	return q.Lat > 0.1 || q.Lat < -0.1 || q.Lng > 0.1 || q.Lng < -0.1
}

// AdminRestaurantQuery filters the moderation listing.
type AdminRestaurantQuery struct {
	Keyword            string
	Status             entity.RestaurantStatus
	VerificationStatus string
	StateName          string
	Page               int
	Limit              int
}

// RestaurantNameSuggestion pairs a matched restaurant display name with its
// region, for the autocomplete payload.
type RestaurantNameSuggestion struct {
	Name  string
	State string
	Area  string
}

// RestaurantRepository defines the interface for restaurant-related database operations.
type RestaurantRepository interface {
	// Search returns a page of restaurants matching the query plus the total
	// count under the same predicates.
	Search(ctx context.Context, query *RestaurantSearchQuery) ([]*entity.Restaurant, int64, error)

	// FindByID retrieves a restaurant with its joined region display names.
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)

	// Create persists a new restaurant listing.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// Update modifies an existing restaurant listing.
	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// UpdateStatus changes the moderation status of a listing.
	UpdateStatus(ctx context.Context, id int64, status entity.RestaurantStatus) error

	// SuggestNames returns active restaurant display names matching the prefix,
	// localized name preferred, each with its region.
	SuggestNames(ctx context.Context, keyword string, limit int) ([]RestaurantNameSuggestion, error)

	// FindDishTexts returns raw recommended-dish strings from active rows whose
	// dishes match the keyword. Splitting and ranking happen in the use case.
	FindDishTexts(ctx context.Context, keyword string, limit int) ([]string, error)

	// AdminList returns a moderation page across all statuses.
	AdminList(ctx context.Context, query *AdminRestaurantQuery) ([]*entity.Restaurant, int64, error)

	// CountByStatus returns the number of listings with the given status.
	CountByStatus(ctx context.Context, status entity.RestaurantStatus) (int64, error)

	// CountAll returns the total number of listings.
	CountAll(ctx context.Context) (int64, error)

	// CountByState aggregates active listings per state for the stats endpoint.
	CountByState(ctx context.Context, country string) ([]entity.StatCount, error)

	// CountByCategory aggregates active listings per vegetarian type.
	CountByCategory(ctx context.Context) ([]entity.StatCount, error)

	// CountByVerification aggregates listings per verification status.
	CountByVerification(ctx context.Context) ([]entity.StatCount, error)
}
