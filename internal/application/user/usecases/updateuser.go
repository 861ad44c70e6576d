package usecases

import (
	"context"

	"netgrid/internal/application/user/dto"
	"netgrid/internal/domain/user"
	"netgrid/internal/shared/authorization"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID    uint
	ActorID   uint
	ActorRole authorization.UserRole
	FullName  *string
	Email     *string
	Role      *string
}

// UpdateUserUseCase edits an account. Users can edit their own profile;
// only administrators can edit other accounts or change roles, and the
// last administrator cannot be demoted.
type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.ActorID, cmd.ActorRole, cmd.UserID) {
		return nil, errors.NewForbiddenError("you can only edit your own account")
	}
	if cmd.Role != nil && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can change roles")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.FullName != nil || cmd.Email != nil {
		fullName := u.FullName()
		email := u.Email()
		if cmd.FullName != nil {
			fullName = *cmd.FullName
		}
		if cmd.Email != nil {
			email = *cmd.Email
		}
		if err := u.UpdateProfile(fullName, email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		newRole := authorization.UserRole(*cmd.Role)
		if !newRole.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
		if u.IsAdmin() && !newRole.IsAdmin() {
			admins, err := uc.userRepo.CountAdmins(ctx)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, errors.NewConflictError("cannot demote the last administrator")
			}
		}
		if err := u.ChangeRole(newRole); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
