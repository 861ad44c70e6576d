package usecases

import (
	"context"

	"netgrid/internal/domain/user"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID    uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// DeleteUserUseCase removes an account. Admin only; the last
// administrator cannot be deleted.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !cmd.ActorRole.IsAdmin() {
		return errors.NewForbiddenError("only administrators can delete accounts")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if u.IsAdmin() {
		admins, err := uc.userRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return errors.NewConflictError("cannot delete the last administrator")
		}
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.ActorID)
	return nil
}
