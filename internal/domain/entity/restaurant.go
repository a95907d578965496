// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// RestaurantStatus is the moderation state of a listing.
type RestaurantStatus string

const (
	RestaurantActive  RestaurantStatus = "active"
	RestaurantPending RestaurantStatus = "pending"
	RestaurantHidden  RestaurantStatus = "hidden"
)

// TimeSlot is an enumerated operating-hours bucket used for filtering,
// distinct from the literal business-hour ranges stored on the record.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// IsValid checks if the TimeSlot is a valid value.
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return true
	default:
		return false
	}
}

// Restaurant represents a directory listing. Names are localized (zh/en);
// the state and area columns hold display names that join against the
// states and areas tables for the localized counterparts.
type Restaurant struct {
	ID                 int64            `json:"id"`
	NameZh             string           `json:"name_zh"`
	NameEn             string           `json:"name_en"`
	Address            string           `json:"address"`
	State              string           `json:"state"`
	Area               string           `json:"area"`
	Country            string           `json:"country"`
	Lat                float64          `json:"lat"`
	Lng                float64          `json:"lng"`
	PriceLevel         int              `json:"price_level"`
	Recommended        bool             `json:"recommended"`
	RecommendedDishes  string           `json:"recommended_dishes"`
	Description        string           `json:"description"`
	Phones             []string         `json:"phones"`
	TimeSlots          []string         `json:"time_slots"`
	RestDays           []string         `json:"rest_days"`
	BusinessHours      map[string]string `json:"business_hours"`
	Photos             []string         `json:"photos"`
	CoverPhoto         string           `json:"cover_photo"`
	VegetarianType     string           `json:"vegetarian_type"`
	Status             RestaurantStatus `json:"status"`
	VerificationStatus string           `json:"verification_status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	// Joined display names, populated by list/detail queries.
	StateName   string `json:"state_name,omitempty"`
	StateNameZh string `json:"state_name_zh,omitempty"`
	AreaName    string `json:"area_name,omitempty"`
	AreaNameZh  string `json:"area_name_zh,omitempty"`

	// DistanceM is the great-circle distance from the query point in meters.
	// Only set when the search was geo-anchored.
	DistanceM *float64 `json:"distance_m,omitempty"`
}

// DisplayName prefers the localized name, matching how the mobile client
// titles a listing.
func (r *Restaurant) DisplayName() string {
	if r.NameZh != "" {
		return r.NameZh
	}
	if r.NameEn != "" {
		return r.NameEn
	}

	return "New Restaurant"
}

// LocationLabel renders "area, state" with the area omitted when absent.
func (r *Restaurant) LocationLabel() string {
	if r.Area != "" {
		return r.Area + ", " + r.State
	}

	return r.State
}

// StatCount is a single bucket of an admin aggregate.
type StatCount struct {
	Name  string `json:"name"`
	Count int64  `json:"cnt"`
}

// AdminStats is the admin dashboard aggregate bundle.
type AdminStats struct {
	TotalRestaurants int64       `json:"total_restaurants"`
	PendingCount     int64       `json:"pending_count"`
	HiddenCount      int64       `json:"hidden_count"`
	TotalUsers       int64       `json:"total_users"`
	ByState          []StatCount `json:"by_state"`
	ByCategory       []StatCount `json:"by_category"`
	ByVerification   []StatCount `json:"by_verification"`
}
