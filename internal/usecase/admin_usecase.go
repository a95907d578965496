package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// AdminListInput filters the moderation listing.
type AdminListInput struct {
	Keyword            string
	Status             string
	VerificationStatus string
	State              string
	Page               int
	Limit              int
}

// AdminListResult is one moderation page.
type AdminListResult struct {
	Restaurants []*entity.Restaurant `json:"restaurants"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

// RestaurantInput carries the writable fields of a listing.
type RestaurantInput struct {
	NameZh             string            `json:"name_zh"`
	NameEn             string            `json:"name_en"`
	Address            string            `json:"address"`
	State              string            `json:"state"`
	Area               string            `json:"area"`
	Country            string            `json:"country"`
	Lat                float64           `json:"lat"`
	Lng                float64           `json:"lng"`
	PriceLevel         int               `json:"price_level"`
	Recommended        bool              `json:"recommended"`
	RecommendedDishes  string            `json:"recommended_dishes"`
	Description        string            `json:"description"`
	Phones             []string          `json:"phones"`
	TimeSlots          []string          `json:"time_slots"`
	RestDays           []string          `json:"rest_days"`
	BusinessHours      map[string]string `json:"business_hours"`
	Photos             []string          `json:"photos"`
	CoverPhoto         string            `json:"cover_photo"`
	VegetarianType     string            `json:"vegetarian_type"`
	Status             string            `json:"status"`
	VerificationStatus string            `json:"verification_status"`
}

// BroadcastInput describes an admin broadcast.
type BroadcastInput struct {
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	RestaurantID int64          `json:"restaurant_id"`
	UserIDs      []int64        `json:"user_ids"`
	Data         map[string]any `json:"data"`
}

// BroadcastResult reports the outcome of a broadcast.
type BroadcastResult struct {
	Recipients int `json:"recipients"`
	PushSent   int `json:"push_sent"`
	PushFailed int `json:"push_failed"`
}

// AdminUsecase defines the interface for moderation and broadcast use cases.
type AdminUsecase interface {
	// ListRestaurants returns a moderation page across all statuses.
	ListRestaurants(ctx context.Context, input *AdminListInput) (*AdminListResult, error)

	// CreateRestaurant adds a listing.
	CreateRestaurant(ctx context.Context, input *RestaurantInput) (*entity.Restaurant, error)

	// UpdateRestaurant replaces the writable fields of a listing.
	UpdateRestaurant(ctx context.Context, id int64, input *RestaurantInput) (*entity.Restaurant, error)

	// UpdateRestaurantStatus changes the moderation status of a listing.
	UpdateRestaurantStatus(ctx context.Context, id int64, status string) error

	// Broadcast fans a notification out to the target users, sends pushes
	// best-effort, and publishes an audit event.
	Broadcast(ctx context.Context, adminID int64, input *BroadcastInput) (*BroadcastResult, error)

	// NotifyNewRestaurant broadcasts a new-restaurant notification at most
	// once per restaurant.
	NotifyNewRestaurant(ctx context.Context, adminID, restaurantID int64) (*BroadcastResult, error)

	// Stats returns the dashboard aggregates.
	Stats(ctx context.Context) (*entity.AdminStats, error)
}
