package model

// StateModel mirrors the 'states' table.
type StateModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	NameZh  string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100);index"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// AreaModel mirrors the 'areas' table.
type AreaModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	StateID int64  `gorm:"not null;index"`
	Name    string `gorm:"type:varchar(100);not null;index"`
	NameZh  string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}
