package models

type ResourceModel struct {
	ID                uint   `gorm:"primaryKey"`
	ResourceName      string `gorm:"uniqueIndex;size:100;not null"`
	QuantityTotal     int    `gorm:"not null"`
	QuantityAvailable int    `gorm:"not null"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ResourceModel) TableName() string {
	return "resources"
}
