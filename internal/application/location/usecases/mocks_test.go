package usecases

import (
	"context"

	"netgrid/internal/domain/location"
	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/shared/logger"
)

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

type mockRequestRepository struct {
	CountByLocationFunc func(ctx context.Context, locationID uint, statuses []vo.Status) (int64, error)
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
	if m.CountByLocationFunc != nil {
		return m.CountByLocationFunc(ctx, locationID, statuses)
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
