package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (*userService, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})

	return svc.(*userService), userRepo
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	id := uuid.New()

	userRepo.EXPECT().FindByID(context.Background(), id).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_ClampsPaging(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().List(ctx, 0, 100).Return([]*entity.User{newUser(entity.RoleClient)}, int64(1), nil)

	page, err := svc.ListUsers(ctx, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
	assert.Len(t, page.Users, 1)
}

func TestUserService_ChangeRole(t *testing.T) {
	actorID := uuid.New()

	t.Run("promotes a client", func(t *testing.T) {
		svc, userRepo := createTestUserService(t)
		ctx := context.Background()
		target := newUser(entity.RoleClient)

		userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		userRepo.EXPECT().UpdateRole(ctx, target.ID, entity.RoleAdmin).Return(nil)

		user, err := svc.ChangeRole(ctx, actorID, target.ID, entity.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})

	t.Run("cannot change own role", func(t *testing.T) {
		svc, _ := createTestUserService(t)

		_, err := svc.ChangeRole(context.Background(), actorID, actorID, entity.RoleClient)

		assert.ErrorIs(t, err, domainerrors.ErrRoleChangeNotAllowed)
	})

	t.Run("cannot grant super admin", func(t *testing.T) {
		svc, _ := createTestUserService(t)

		_, err := svc.ChangeRole(context.Background(), actorID, uuid.New(), entity.RoleSuperAdmin)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("cannot demote a super admin", func(t *testing.T) {
		svc, userRepo := createTestUserService(t)
		ctx := context.Background()
		owner := newUser(entity.RoleSuperAdmin)

		userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

		_, err := svc.ChangeRole(ctx, actorID, owner.ID, entity.RoleClient)

		assert.ErrorIs(t, err, domainerrors.ErrRoleChangeNotAllowed)
	})
}
