package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoticeModel mirrors the 'notices' table of in-app bulletins.
type NoticeModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Type      string         `gorm:"type:varchar(20);not null;index"`
	Content   string         `gorm:"type:text"`
	Info      string         `gorm:"type:text"`
	ImageURL  string         `gorm:"type:text"`
	LinkName  string         `gorm:"type:varchar(255)"`
	Links     datatypes.JSON `gorm:"type:jsonb"`
	Priority  int            `gorm:"not null;default:0"`
	IsActive  bool           `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NoticeModel) TableName() string {
	return "notices"
}
