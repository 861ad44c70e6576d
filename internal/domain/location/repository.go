package location

import "context"

type Repository interface {
	Save(ctx context.Context, loc *Location) error
	Update(ctx context.Context, loc *Location) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Location, error)
	FindByAreaName(ctx context.Context, areaName string) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
}
