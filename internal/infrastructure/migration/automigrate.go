package migration

import (
	"netgrid/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.LocationModel{},
		&models.ResourceModel{},
		&models.RequestModel{},
		&models.RequestResourceModel{},
	}
}
