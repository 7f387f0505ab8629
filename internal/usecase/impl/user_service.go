package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, page, pageSize int) (*usecase.UserPage, error) {
	page, pageSize = pageOf(page, pageSize)

	users, total, err := srv.userRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserPage{Users: users, Total: total, Page: page, PageSize: pageSize}, nil
}

// ChangeRole promotes or demotes between client and admin. Super admins cannot
// be created or demoted here and nobody may change their own role.
func (srv *userService) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role entity.Role) (*entity.User, error) {
	if role != entity.RoleClient && role != entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be client or admin")
	}
	if actorID == targetID {
		return nil, domainerrors.ErrRoleChangeNotAllowed.WithDetails("you cannot change your own role")
	}

	target, err := srv.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == entity.RoleSuperAdmin {
		return nil, domainerrors.ErrRoleChangeNotAllowed.WithDetails("super admin roles are managed by configuration")
	}
	if target.Role == role {
		return target, nil
	}

	if err := srv.userRepo.UpdateRole(ctx, targetID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("User role changed",
		slog.String("actorID", actorID.String()),
		slog.String("userID", targetID.String()),
		slog.String("from", target.Role.String()),
		slog.String("to", role.String()))

	target.Role = role

	return target, nil
}
