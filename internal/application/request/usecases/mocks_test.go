package usecases

import (
	"context"

	"netgrid/internal/domain/location"
	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/domain/resource"
	"netgrid/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc                    func(ctx context.Context, req *request.Request) error
	UpdateFunc                  func(ctx context.Context, req *request.Request) error
	FindByIDFunc                func(ctx context.Context, id uint) (*request.Request, error)
	ListFunc                    func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error)
	CountReservedByResourceFunc func(ctx context.Context, resourceID uint) (int64, error)
	StatusCountsFunc            func(ctx context.Context, filter request.ReportFilter) (map[string]int64, error)
	LocationCountsFunc          func(ctx context.Context, filter request.ReportFilter) (map[string]int64, error)
	ConnectionTypeCountsFunc    func(ctx context.Context, filter request.ReportFilter) (map[string]int64, error)
	CountByLocationFunc         func(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepository) CountReservedByResource(ctx context.Context, resourceID uint) (int64, error) {
	if m.CountReservedByResourceFunc != nil {
		return m.CountReservedByResourceFunc(ctx, resourceID)
	}
	return 0, nil
}

func (m *mockRequestRepository) StatusCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	if m.StatusCountsFunc != nil {
		return m.StatusCountsFunc(ctx, filter)
	}
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) LocationCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	if m.LocationCountsFunc != nil {
		return m.LocationCountsFunc(ctx, filter)
	}
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) ConnectionTypeCounts(ctx context.Context, filter request.ReportFilter) (map[string]int64, error) {
	if m.ConnectionTypeCountsFunc != nil {
		return m.ConnectionTypeCountsFunc(ctx, filter)
	}
	return map[string]int64{}, nil
}

func (m *mockRequestRepository) CountByLocation(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error) {
	if m.CountByLocationFunc != nil {
		return m.CountByLocationFunc(ctx, locationID, statuses)
	}
	return 0, nil
}

type mockLocationRepository struct {
	SaveFunc           func(ctx context.Context, loc *location.Location) error
	UpdateFunc         func(ctx context.Context, loc *location.Location) error
	DeleteFunc         func(ctx context.Context, id uint) error
	FindByIDFunc       func(ctx context.Context, id uint) (*location.Location, error)
	FindByAreaNameFunc func(ctx context.Context, areaName string) (*location.Location, error)
	ListFunc           func(ctx context.Context) ([]*location.Location, error)
}

func (m *mockLocationRepository) Save(ctx context.Context, loc *location.Location) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, loc)
	}
	return nil
}

func (m *mockLocationRepository) Update(ctx context.Context, loc *location.Location) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, loc)
	}
	return nil
}

func (m *mockLocationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLocationRepository) FindByID(ctx context.Context, id uint) (*location.Location, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLocationRepository) FindByAreaName(ctx context.Context, areaName string) (*location.Location, error) {
	if m.FindByAreaNameFunc != nil {
		return m.FindByAreaNameFunc(ctx, areaName)
	}
	return nil, nil
}

func (m *mockLocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

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

type mockReservationEngine struct {
	TryReserveFunc func(ctx context.Context, lines map[uint]int) error
	ReleaseFunc    func(lines map[uint]int) error
}

func (m *mockReservationEngine) TryReserve(ctx context.Context, lines map[uint]int) error {
	if m.TryReserveFunc != nil {
		return m.TryReserveFunc(ctx, lines)
	}
	return nil
}

func (m *mockReservationEngine) Release(lines map[uint]int) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(lines)
	}
	return nil
}

// mockTxManager runs the function directly, no transaction semantics.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
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
