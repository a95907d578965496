package model

// TagModel mirrors the 'tags' table of curated filter facets.
type TagModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Type      string `gorm:"type:varchar(50);not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
	NameZh    string `gorm:"type:varchar(100)"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}
