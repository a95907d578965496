package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// SearchInput carries every filter the public search endpoint accepts.
type SearchInput struct {
	Keyword     string
	StateID     int64
	Area        string
	PriceLevel  int
	PriceMin    int
	PriceMax    int
	Recommended *bool
	TimeSlot    string
	IsOpenNow   bool
	Tags        []string

	Lat     float64
	Lng     float64
	RadiusM float64

	Sort  string
	Page  int
	Limit int

	// UserID flags favorites in the result when the caller is authenticated.
	UserID int64
}

// SearchResult is one page of restaurants plus paging metadata.
type SearchResult struct {
	Restaurants []*RestaurantView `json:"restaurants"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	TotalPages  int               `json:"total_pages"`
	Filters     *AppliedFilters   `json:"filters_applied"`
}

// AppliedPriceRange echoes an engaged min/max price filter.
type AppliedPriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AppliedLocation echoes an engaged geo filter, radius in meters.
type AppliedLocation struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius float64 `json:"radius"`
}

// AppliedFilters echoes the filters a search actually ran with. The
// price_range and location objects are present only when engaged.
type AppliedFilters struct {
	StateID     int64              `json:"state_id,omitempty"`
	Area        string             `json:"area,omitempty"`
	Search      string             `json:"search,omitempty"`
	PriceLevel  int                `json:"price_level,omitempty"`
	PriceRange  *AppliedPriceRange `json:"price_range,omitempty"`
	Recommended *bool              `json:"recommended,omitempty"`
	TimeSlot    string             `json:"time_slot,omitempty"`
	IsOpenNow   bool               `json:"is_open_now,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	SortBy      string             `json:"sort_by,omitempty"`
	Location    *AppliedLocation   `json:"location,omitempty"`
}

// RestaurantView decorates a restaurant with per-caller state.
type RestaurantView struct {
	*entity.Restaurant
	IsFavorite bool `json:"is_favorite"`
}

// Suggestion is one typed autocomplete entry. Restaurant entries carry a
// "state, area" location string; area entries carry their state.
type Suggestion struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Location string `json:"location,omitempty"`
	State    string `json:"state,omitempty"`
}

// PriceLevelOption describes one selectable price tier.
type PriceLevelOption struct {
	Value   int    `json:"value"`
	Label   string `json:"label"`
	LabelEn string `json:"label_en"`
	LabelZh string `json:"label_zh"`
}

// TimeSlotOption describes one selectable meal period.
type TimeSlotOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	LabelEn string `json:"label_en"`
	Hours   string `json:"hours"`
}

// FilterOption is a generic value/label pair for sorts and feature toggles.
type FilterOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	LabelEn string `json:"label_en"`
}

// FilterMetadata enumerates every filter the search UI can render.
type FilterMetadata struct {
	PriceLevels []PriceLevelOption `json:"price_levels"`
	TimeSlots   []TimeSlotOption   `json:"time_slots"`
	SortOptions []FilterOption     `json:"sort_options"`
	Features    []FilterOption     `json:"features"`
}

// RestaurantUsecase defines the interface for public restaurant use cases.
type RestaurantUsecase interface {
	// Search returns a filtered, ranked page of active restaurants.
	Search(ctx context.Context, input *SearchInput) (*SearchResult, error)

	// GetByID returns one restaurant with region names and favorite state.
	GetByID(ctx context.Context, id, userID int64) (*RestaurantView, error)

	// Suggest returns up to limit ranked autocomplete entries for a
	// partial keyword.
	Suggest(ctx context.Context, keyword string, limit int) ([]Suggestion, error)

	// FilterMetadata enumerates the static filter options for the search UI.
	FilterMetadata() *FilterMetadata

	// ShareQR renders a PNG QR code linking to the restaurant's share page.
	ShareQR(ctx context.Context, id int64) ([]byte, error)
}
