// Package entity contains the core business objects of the project.
package entity

import "time"

// Favorite joins a user to a restaurant. Existence is the only state;
// a toggle either inserts or deletes the row.
type Favorite struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	RestaurantID int64     `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteRestaurant is the minimal projection returned by the favorites
// listing, joined from the restaurants table.
type FavoriteRestaurant struct {
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	CoverPhoto   string  `json:"cover_photo"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}
