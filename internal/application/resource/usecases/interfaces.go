package usecases

import (
	"context"

	"netgrid/internal/application/resource/dto"
)

// TxManager runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// InventoryRegistry is the slice of the inventory engine the resource
// catalog maintains: registration and capacity, not reservations.
// Satisfied by inventory.Inventory.
type InventoryRegistry interface {
	AddResource(resourceID uint, total, available int) error
	RemoveResource(resourceID uint)
	SetCapacity(resourceID uint, total int) error
	Available(resourceID uint) (int, error)
}

type CreateResourceExecutor interface {
	Execute(ctx context.Context, cmd CreateResourceCommand) (*dto.ResourceDTO, error)
}

type UpdateResourceExecutor interface {
	Execute(ctx context.Context, cmd UpdateResourceCommand) (*dto.ResourceDTO, error)
}

type DeleteResourceExecutor interface {
	Execute(ctx context.Context, cmd DeleteResourceCommand) error
}

type GetResourceExecutor interface {
	Execute(ctx context.Context, resourceID uint) (*dto.ResourceDTO, error)
}

type ListResourcesExecutor interface {
	Execute(ctx context.Context) ([]*dto.ResourceDTO, error)
}
