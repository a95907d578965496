package model

import (
	"time"

	"gorm.io/datatypes"
)

// RestaurantModel mirrors the 'restaurants' table. The repeated fields
// (phones, time slots, rest days, business hours, photos) are stored as jsonb.
// The state and area columns hold display names that join against the region
// tables for localized counterparts.
type RestaurantModel struct {
	ID                 int64          `gorm:"primaryKey;autoIncrement"`
	NameZh             string         `gorm:"type:varchar(255);index"`
	NameEn             string         `gorm:"type:varchar(255);index"`
	Address            string         `gorm:"type:text"`
	State              string         `gorm:"type:varchar(100);index"`
	Area               string         `gorm:"type:varchar(100);index"`
	Country            string         `gorm:"type:varchar(100);index"`
	Lat                float64        `gorm:"type:decimal(10,8)"`
	Lng                float64        `gorm:"type:decimal(11,8)"`
	PriceLevel         int            `gorm:"not null;default:0"`
	Recommended        *bool          // NULL means never reviewed, distinct from false
	RecommendedDishes  string         `gorm:"type:text"`
	Description        string         `gorm:"type:text"`
	Phones             datatypes.JSON `gorm:"type:jsonb"`
	TimeSlots          datatypes.JSON `gorm:"type:jsonb"`
	RestDays           datatypes.JSON `gorm:"type:jsonb"`
	BusinessHours      datatypes.JSON `gorm:"type:jsonb"`
	Photos             datatypes.JSON `gorm:"type:jsonb"`
	CoverPhoto         string         `gorm:"type:text"`
	VegetarianType     string         `gorm:"type:varchar(50);index"`
	Status             string         `gorm:"type:varchar(20);not null;default:'active';index"`
	VerificationStatus string         `gorm:"type:varchar(20);not null;default:'unverified'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
