package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netgrid/internal/domain/user"
	"netgrid/internal/shared/authorization"
	apperrors "netgrid/internal/shared/errors"
)

func testUser(t *testing.T, id uint, email string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Dana Voss", email, "hashed:secret123", role, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("registers with user role", func(t *testing.T) {
		useCase := NewRegisterUserUseCase(
			&mockUserRepository{
				SaveFunc: func(ctx context.Context, u *user.User) error {
					return u.SetID(7)
				},
			},
			&mockPasswordHasher{},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), RegisterUserCommand{
			FullName: "Dana Voss",
			Email:    "Dana@Example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(7), result.ID)
		assert.Equal(t, "dana@example.com", result.Email)
		assert.Equal(t, "user", result.Role)
	})

	t.Run("short password", func(t *testing.T) {
		useCase := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), RegisterUserCommand{
			FullName: "Dana Voss",
			Email:    "dana@example.com",
			Password: "short",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		useCase := NewRegisterUserUseCase(
			&mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return testUser(t, 1, email, authorization.RoleUser), nil
				},
			},
			&mockPasswordHasher{},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), RegisterUserCommand{
			FullName: "Dana Voss",
			Email:    "dana@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		useCase := NewLoginUserUseCase(
			&mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return testUser(t, 1, email, authorization.RoleUser), nil
				},
			},
			&mockPasswordHasher{},
			&mockTokenManager{},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), LoginUserCommand{
			Email:    "dana@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "access-token", result.AccessToken)
		assert.Equal(t, "refresh-token", result.RefreshToken)
		assert.Equal(t, uint(1), result.User.ID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrongPassword := NewLoginUserUseCase(
			&mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return testUser(t, 1, email, authorization.RoleUser), nil
				},
			},
			&mockPasswordHasher{
				CompareFunc: func(hash, password string) error {
					return errors.New("mismatch")
				},
			},
			&mockTokenManager{},
			&mockLogger{},
		)
		unknownEmail := NewLoginUserUseCase(
			&mockUserRepository{},
			&mockPasswordHasher{},
			&mockTokenManager{},
			&mockLogger{},
		)

		_, err1 := wrongPassword.Execute(context.Background(), LoginUserCommand{
			Email: "dana@example.com", Password: "nope",
		})
		_, err2 := unknownEmail.Execute(context.Background(), LoginUserCommand{
			Email: "ghost@example.com", Password: "nope",
		})

		require.Error(t, err1)
		require.Error(t, err2)
		assert.Equal(t, err1.Error(), err2.Error())
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("issues a fresh pair", func(t *testing.T) {
		useCase := NewRefreshTokenUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "dana@example.com", authorization.RoleUser), nil
				},
			},
			&mockTokenManager{
				ValidateRefreshTokenFunc: func(token string) (uint, error) {
					return 1, nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		useCase := NewRefreshTokenUseCase(
			&mockUserRepository{},
			&mockTokenManager{
				ValidateRefreshTokenFunc: func(token string) (uint, error) {
					return 0, errors.New("expired")
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "stale"})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	t.Run("user edits own profile", func(t *testing.T) {
		newName := "Dana V."

		useCase := NewUpdateUserUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "dana@example.com", authorization.RoleUser), nil
				},
			},
			&mockLogger{},
		)

		result, err := useCase.Execute(context.Background(), UpdateUserCommand{
			UserID:    1,
			ActorID:   1,
			ActorRole: authorization.RoleUser,
			FullName:  &newName,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Dana V.", result.FullName)
	})

	t.Run("user cannot edit another account", func(t *testing.T) {
		useCase := NewUpdateUserUseCase(&mockUserRepository{}, &mockLogger{})
		newName := "Hijacked"

		result, err := useCase.Execute(context.Background(), UpdateUserCommand{
			UserID:    2,
			ActorID:   1,
			ActorRole: authorization.RoleUser,
			FullName:  &newName,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("user cannot change own role", func(t *testing.T) {
		useCase := NewUpdateUserUseCase(&mockUserRepository{}, &mockLogger{})
		adminRole := "admin"

		result, err := useCase.Execute(context.Background(), UpdateUserCommand{
			UserID:    1,
			ActorID:   1,
			ActorRole: authorization.RoleUser,
			Role:      &adminRole,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("last admin cannot be demoted", func(t *testing.T) {
		useCase := NewUpdateUserUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "admin@example.com", authorization.RoleAdmin), nil
				},
				CountAdminsFunc: func(ctx context.Context) (int64, error) {
					return 1, nil
				},
			},
			&mockLogger{},
		)
		userRole := "user"

		result, err := useCase.Execute(context.Background(), UpdateUserCommand{
			UserID:    1,
			ActorID:   1,
			ActorRole: authorization.RoleAdmin,
			Role:      &userRole,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	t.Run("admin deletes a regular user", func(t *testing.T) {
		deleted := false

		useCase := NewDeleteUserUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "dana@example.com", authorization.RoleUser), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), DeleteUserCommand{
			UserID:    2,
			ActorID:   1,
			ActorRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		useCase := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteUserCommand{
			UserID:    2,
			ActorID:   3,
			ActorRole: authorization.RoleUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("last admin cannot be deleted", func(t *testing.T) {
		deleteCalled := false

		useCase := NewDeleteUserUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "admin@example.com", authorization.RoleAdmin), nil
				},
				CountAdminsFunc: func(ctx context.Context) (int64, error) {
					return 1, nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleteCalled = true
					return nil
				},
			},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), DeleteUserCommand{
			UserID:    1,
			ActorID:   1,
			ActorRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.False(t, deleteCalled)
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	t.Run("changes with correct current password", func(t *testing.T) {
		var savedHash string

		useCase := NewChangePasswordUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "dana@example.com", authorization.RoleUser), nil
				},
				UpdateFunc: func(ctx context.Context, u *user.User) error {
					savedHash = u.PasswordHash()
					return nil
				},
			},
			&mockPasswordHasher{},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), ChangePasswordCommand{
			UserID:      1,
			OldPassword: "secret123",
			NewPassword: "evenbetter456",
		})

		require.NoError(t, err)
		assert.Equal(t, "hashed:evenbetter456", savedHash)
	})

	t.Run("wrong current password", func(t *testing.T) {
		useCase := NewChangePasswordUseCase(
			&mockUserRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "dana@example.com", authorization.RoleUser), nil
				},
			},
			&mockPasswordHasher{
				CompareFunc: func(hash, password string) error {
					return errors.New("mismatch")
				},
			},
			&mockLogger{},
		)

		err := useCase.Execute(context.Background(), ChangePasswordCommand{
			UserID:      1,
			OldPassword: "wrong",
			NewPassword: "evenbetter456",
		})

		require.Error(t, err)
	})
}
