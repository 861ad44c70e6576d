package usecases

import (
	"context"
	"strings"

	"netgrid/internal/application/user/dto"
	"netgrid/internal/domain/user"
	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	AccessToken  string
	RefreshToken string
	User         *dto.UserDTO
}

type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenManager
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenManager,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email and wrong password; no account
	// enumeration.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
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

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginUserResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserDTO(u),
	}, nil
}
