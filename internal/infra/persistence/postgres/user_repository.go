package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It wraps the connection (or transaction) in the GORM Gen query builder.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address, case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(strings.ToLower(strings.TrimSpace(email)))).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// List returns one page of users, newest first.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error) {
	userModels, total, err := repo.q.UserModel.WithContext(ctx).
		Order(repo.q.UserModel.CreatedAt.Desc()).
		FindByPage(offset, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// UpdateRole changes a user's role.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		UpdateSimple(
			repo.q.UserModel.Role.Value(role.String()),
			repo.q.UserModel.UpdatedAt.Value(time.Now().UTC()),
		)
	if err != nil {
		return errors.Wrap(err, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddTotalSpent increments total_spent in place and flips is_regular with a guarded
// second update, so concurrent settlements for the same user never lose an increment.
func (repo *userRepository) AddTotalSpent(ctx context.Context, id uuid.UUID, amount, threshold decimal.Decimal) (bool, error) {
	u := repo.q.UserModel

	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(id)).
		Update(u.TotalSpent, gorm.Expr("total_spent + ?", amount))
	if err != nil {
		return false, errors.Wrap(err, "failed to add total spent")
	}
	if result.RowsAffected == 0 {
		return false, repository.ErrUserNotFound
	}

	promoted, err := u.WithContext(ctx).
		Where(u.ID.Eq(id), u.IsRegular.Is(false), u.TotalSpent.Gte(threshold)).
		UpdateSimple(u.IsRegular.Value(true), u.UpdatedAt.Value(time.Now().UTC()))
	if err != nil {
		return false, errors.Wrap(err, "failed to promote regular customer")
	}

	return promoted.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Phone:      data.Phone,
		Role:       entity.Role(data.Role),
		TotalSpent: data.TotalSpent,
		IsRegular:  data.IsRegular,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleClient
	}

	return &model.UserModel{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Phone:      data.Phone,
		Role:       role.String(),
		TotalSpent: data.TotalSpent,
		IsRegular:  data.IsRegular,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
