package models

type LocationModel struct {
	ID                 uint   `gorm:"primaryKey"`
	AreaName           string `gorm:"size:100;not null;index"`
	IsNetworkAvailable bool   `gorm:"not null;default:false"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}
