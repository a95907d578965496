package model

import "time"

// FavoriteModel mirrors the 'user_favorites' table. The (user, restaurant)
// pair is unique; a toggle inserts or deletes the row.
type FavoriteModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	UserID       int64 `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_favorites"
}
