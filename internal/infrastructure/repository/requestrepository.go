package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/infrastructure/persistence/mappers"
	"netgrid/internal/infrastructure/persistence/models"
	"netgrid/internal/shared/db"
)

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(database *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     database,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	lineModels := r.mapper.LinesToModels(req)
	if err := tx.Create(&lineModels).Error; err != nil {
		return fmt.Errorf("failed to save request lines: %w", err)
	}

	return nil
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	// Lines are immutable after creation; only the decision fields move.
	// The status precondition makes the write a compare-and-swap: every
	// transition leaves Pending, so a row that no longer matches was
	// decided by a concurrent caller and must not be overwritten.
	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ? AND status = ?", model.ID, vo.StatusPending.String()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"decided_by": model.DecidedBy,
			"decided_at": model.DecidedAt,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return request.ErrAlreadyDecided
	}

	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	var lineModels []models.RequestResourceModel
	if err := tx.Where("request_id = ?", id).Find(&lineModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load request lines: %w", err)
	}

	return r.mapper.ToDomain(&model, lineModels)
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.RequestModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate.UnixMilli())
	}
	if filter.EndDate != nil {
		query = query.Where("created_at < ?", filter.EndDate.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var requestModels []models.RequestModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	if len(requestModels) == 0 {
		return []*request.Request{}, total, nil
	}

	ids := make([]uint, 0, len(requestModels))
	for _, m := range requestModels {
		ids = append(ids, m.ID)
	}

	var lineModels []models.RequestResourceModel
	if err := tx.Where("request_id IN ?", ids).Find(&lineModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load request lines: %w", err)
	}

	linesByRequest := make(map[uint][]models.RequestResourceModel, len(requestModels))
	for _, lm := range lineModels {
		linesByRequest[lm.RequestID] = append(linesByRequest[lm.RequestID], lm)
	}

	requests := make([]*request.Request, 0, len(requestModels))
	for i := range requestModels {
		req, err := r.mapper.ToDomain(&requestModels[i], linesByRequest[requestModels[i].ID])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

func (r *RequestRepository) CountReservedByResource(ctx context.Context, resourceID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var reserved int64
	err := tx.
		Model(&models.RequestResourceModel{}).
		Select("COALESCE(SUM(request_resources.quantity), 0)").
		Joins("JOIN requests ON requests.id = request_resources.request_id").
		Where("request_resources.resource_id = ?", resourceID).
		Where("requests.status IN ?", reservationStatuses()).
		Scan(&reserved).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum reserved quantities: %w", err)
	}

	return reserved, nil
}

func (r *RequestRepository) StatusCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	return r.groupCounts(ctx, filter, "requests.status", nil)
}

func (r *RequestRepository) LocationCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	join := "JOIN locations ON locations.id = requests.location_id"
	return r.groupCounts(ctx, filter, "locations.area_name", &join)
}

func (r *RequestRepository) ConnectionTypeCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	return r.groupCounts(ctx, filter, "requests.connection_type", nil)
}

func (r *RequestRepository) CountByLocation(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.RequestModel{}).Where("location_id = ?", locationID)
	if len(statuses) > 0 {
		statusStrings := make([]string, 0, len(statuses))
		for _, s := range statuses {
			statusStrings = append(statusStrings, s.String())
		}
		query = query.Where("status IN ?", statusStrings)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count requests by location: %w", err)
	}

	return count, nil
}

type groupCountRow struct {
	GroupKey string `gorm:"column:group_key"`
	Count    int64  `gorm:"column:count"`
}

func (r *RequestRepository) groupCounts(ctx context.Context, filter request.ReportFilter, column string, join *string) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.RequestModel{}).
		Select(column + " AS group_key, COUNT(*) AS count").
		Where("requests.created_at >= ?", filter.Start.UnixMilli()).
		Where("requests.created_at < ?", filter.End.UnixMilli())
	if join != nil {
		query = query.Joins(*join)
	}
	if filter.Status != nil {
		query = query.Where("requests.status = ?", filter.Status.String())
	}

	var rows []groupCountRow
	if err := query.Group(column).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate requests by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupKey] = row.Count
	}
	return counts, nil
}

func reservationStatuses() []string {
	return []string{vo.StatusPending.String(), vo.StatusApproved.String()}
}
