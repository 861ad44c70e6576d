package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"netgrid/internal/domain/resource"
	"netgrid/internal/infrastructure/persistence/mappers"
	"netgrid/internal/infrastructure/persistence/models"
	"netgrid/internal/shared/db"
)

type ResourceRepository struct {
	db     *gorm.DB
	mapper mappers.ResourceMapper
}

func NewResourceRepository(database *gorm.DB) *ResourceRepository {
	return &ResourceRepository{
		db:     database,
		mapper: mappers.NewResourceMapper(),
	}
}

func (r *ResourceRepository) Save(ctx context.Context, res *resource.Resource) error {
	model := r.mapper.ToModel(res)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save resource: %w", err)
	}

	return res.SetID(model.ID)
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	model := r.mapper.ToModel(res)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ResourceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"resource_name":      model.ResourceName,
			"quantity_total":     model.QuantityTotal,
			"quantity_available": model.QuantityAvailable,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}

	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.ResourceModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uint) (*resource.Resource, error) {
	var model models.ResourceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ResourceRepository) FindByIDs(ctx context.Context, ids []uint) ([]*resource.Resource, error) {
	if len(ids) == 0 {
		return []*resource.Resource{}, nil
	}

	var resourceModels []models.ResourceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&resourceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find resources: %w", err)
	}

	resources := make([]*resource.Resource, 0, len(resourceModels))
	for i := range resourceModels {
		res, err := r.mapper.ToDomain(&resourceModels[i])
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}

	return resources, nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	var resourceModels []models.ResourceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&resourceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	resources := make([]*resource.Resource, 0, len(resourceModels))
	for i := range resourceModels {
		res, err := r.mapper.ToDomain(&resourceModels[i])
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}

	return resources, nil
}

func (r *ResourceRepository) AdjustAvailability(ctx context.Context, deltas map[uint]int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := time.Now().UnixMilli()

	for id, delta := range deltas {
		result := tx.
			Model(&models.ResourceModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"quantity_available": gorm.Expr("quantity_available + ?", delta),
				"updated_at":         now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to adjust availability for resource %d: %w", id, result.Error)
		}
	}

	return nil
}
