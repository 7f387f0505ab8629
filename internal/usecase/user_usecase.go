package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserPage is one page of accounts.
type UserPage struct {
	Users    []*entity.User
	Total    int64
	Page     int
	PageSize int
}

// UserUsecase covers profile reads and super admin account management.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, page, pageSize int) (*UserPage, error)
	// ChangeRole sets a user's role to client or admin. Super admins are managed by config only.
	ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role entity.Role) (*entity.User, error)
}
