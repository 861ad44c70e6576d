package usecases

import (
	"context"

	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/logger"
)

type mockResourceRepository struct {
	SaveFunc               func(ctx context.Context, res *resource.Resource) error
	UpdateFunc             func(ctx context.Context, res *resource.Resource) error
	DeleteFunc             func(ctx context.Context, id uint) error
	FindByIDFunc           func(ctx context.Context, id uint) (*resource.Resource, error)
	FindByIDsFunc          func(ctx context.Context, ids []uint) ([]*resource.Resource, error)
	ListFunc               func(ctx context.Context) ([]*resource.Resource, error)
	AdjustAvailabilityFunc func(ctx context.Context, deltas map[uint]int) error
}

func (m *mockResourceRepository) Save(ctx context.Context, res *resource.Resource) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, res)
	}
	return nil
}

func (m *mockResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, res)
	}
	return nil
}

func (m *mockResourceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockResourceRepository) FindByID(ctx context.Context, id uint) (*resource.Resource, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockResourceRepository) FindByIDs(ctx context.Context, ids []uint) ([]*resource.Resource, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockResourceRepository) AdjustAvailability(ctx context.Context, deltas map[uint]int) error {
	if m.AdjustAvailabilityFunc != nil {
		return m.AdjustAvailabilityFunc(ctx, deltas)
	}
	return nil
}

type mockRequestRepository struct {
	CountReservedByResourceFunc func(ctx context.Context, resourceID uint) (int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	return nil, 0, nil
}

func (m *mockRequestRepository) CountReservedByResource(ctx context.Context, resourceID uint) (int64, error) {
	if m.CountReservedByResourceFunc != nil {
		return m.CountReservedByResourceFunc(ctx, resourceID)
	}
	return 0, nil
}

func (m *mockRequestRepository) StatusCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) LocationCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) ConnectionTypeCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) CountByLocation(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error) {
	return 0, nil
}

type mockInventoryRegistry struct {
	AddResourceFunc    func(resourceID uint, total, available int) error
	RemoveResourceFunc func(resourceID uint)
	SetCapacityFunc    func(resourceID uint, total int) error
	AvailableFunc      func(resourceID uint) (int, error)
}

func (m *mockInventoryRegistry) AddResource(resourceID uint, total, available int) error {
	if m.AddResourceFunc != nil {
		return m.AddResourceFunc(resourceID, total, available)
	}
	return nil
}

func (m *mockInventoryRegistry) RemoveResource(resourceID uint) {
	if m.RemoveResourceFunc != nil {
		m.RemoveResourceFunc(resourceID)
	}
}

func (m *mockInventoryRegistry) SetCapacity(resourceID uint, total int) error {
	if m.SetCapacityFunc != nil {
		return m.SetCapacityFunc(resourceID, total)
	}
	return nil
}

func (m *mockInventoryRegistry) Available(resourceID uint) (int, error) {
	if m.AvailableFunc != nil {
		return m.AvailableFunc(resourceID)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)  {}
func (m *mockLogger) Info(msg string, args ...any)   {}
func (m *mockLogger) Warn(msg string, args ...any)   {}
func (m *mockLogger) Error(msg string, args ...any)  {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
