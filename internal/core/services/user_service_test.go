package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	"github.com/dealerdesk/backend/internal/core/services"
	"github.com/dealerdesk/backend/internal/dto"
	"github.com/dealerdesk/backend/internal/repositories/memory"
)

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	service := services.NewUserService(repos.UserRepo)

	created, err := service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "mkaplan",
		Password: "correct-horse-battery",
		Name:     "Morgan Kaplan",
		Role:     domain.RoleAccountant,
	}, "admin-1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.AuthenticateUser(ctx, "mkaplan", "correct-horse-battery")
		require.NoError(t, err)
		require.Equal(t, created.UserID, user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.AuthenticateUser(ctx, "mkaplan", "nope")
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := service.AuthenticateUser(ctx, "ghost", "whatever")
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("deleted user cannot log in", func(t *testing.T) {
		require.NoError(t, service.DeleteUser(ctx, created.UserID, "admin-1"))
		_, err := service.AuthenticateUser(ctx, "mkaplan", "correct-horse-battery")
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	service := services.NewUserService(repos.UserRepo)

	req := dto.CreateUserRequest{
		Username: "mkaplan",
		Password: "correct-horse-battery",
		Name:     "Morgan Kaplan",
		Role:     domain.RoleReadOnly,
	}
	_, err := service.CreateUser(ctx, req, "admin-1")
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, req, "admin-1")
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}
