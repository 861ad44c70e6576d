package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"netgrid/internal/domain/location"
	"netgrid/internal/infrastructure/persistence/mappers"
	"netgrid/internal/infrastructure/persistence/models"
	"netgrid/internal/shared/db"
)

type LocationRepository struct {
	db     *gorm.DB
	mapper mappers.LocationMapper
}

func NewLocationRepository(database *gorm.DB) *LocationRepository {
	return &LocationRepository{
		db:     database,
		mapper: mappers.NewLocationMapper(),
	}
}

func (r *LocationRepository) Save(ctx context.Context, loc *location.Location) error {
	model := r.mapper.ToModel(loc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	return loc.SetID(model.ID)
}

func (r *LocationRepository) Update(ctx context.Context, loc *location.Location) error {
	model := r.mapper.ToModel(loc)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.LocationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"area_name":            model.AreaName,
			"is_network_available": model.IsNetworkAvailable,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update location: %w", result.Error)
	}

	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.LocationModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*location.Location, error) {
	var model models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LocationRepository) FindByAreaName(ctx context.Context, areaName string) (*location.Location, error) {
	var model models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("LOWER(area_name) = LOWER(?)", areaName).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location by area name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	var locationModels []models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("area_name ASC").Find(&locationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*location.Location, 0, len(locationModels))
	for i := range locationModels {
		loc, err := r.mapper.ToDomain(&locationModels[i])
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}
