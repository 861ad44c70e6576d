package usecases

import (
	"context"

	"netgrid/internal/application/user/dto"
)

// PasswordHasher hashes and verifies credentials. Satisfied by
// auth.BcryptHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenManager issues and validates the JWT pair. Satisfied by
// auth.JWTManager.
type TokenManager interface {
	GenerateAccessToken(userID uint, role string) (string, error)
	GenerateRefreshToken(userID uint) (string, error)
	ValidateRefreshToken(token string) (uint, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error)
}

type LoginUserExecutor interface {
	Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginUserResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}
