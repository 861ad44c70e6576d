package models

type RequestModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	LocationID     uint   `gorm:"not null;index"`
	ConnectionType string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	DecidedBy      *uint
	DecidedAt      *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}

type RequestResourceModel struct {
	ID         uint `gorm:"primaryKey"`
	RequestID  uint `gorm:"not null;index:idx_request_resource,unique"`
	ResourceID uint `gorm:"not null;index:idx_request_resource,unique;index"`
	Quantity   int  `gorm:"not null"`
}

func (RequestResourceModel) TableName() string {
	return "request_resources"
}
