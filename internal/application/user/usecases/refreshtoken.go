package usecases

import (
	"context"

	"netgrid/internal/application/user/dto"
	"netgrid/internal/domain/user"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token
// pair. The user row is re-read so a role change takes effect on the
// next refresh.
type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenManager
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	tokens TokenManager,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginUserResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	userID, err := uc.tokens.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	accessToken, err := uc.tokens.GenerateAccessToken(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}
	refreshToken, err := uc.tokens.GenerateRefreshToken(u.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate refresh token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &LoginUserResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserDTO(u),
	}, nil
}
