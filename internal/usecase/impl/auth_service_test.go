package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*authService).now = clock

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (fx authServiceFixtures) expectTokens(role entity.Role) {
	fx.tokenService.EXPECT().GenerateTokens(mock.Anything, role).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantRole entity.Role
	}{
		{name: "regular email becomes client", email: "Ada@Example.com ", wantRole: entity.RoleClient},
		{name: "configured email becomes super admin", email: "owner@bakery.test", wantRole: entity.RoleSuperAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)

			var created *entity.User
			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				userRepo := mockRepo.NewMockUserRepository(t)
				authRepo := mockRepo.NewMockAuthRepository(t)
				analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
				factory.EXPECT().NewUserRepository().Return(userRepo)
				factory.EXPECT().NewAuthRepository().Return(authRepo)
				factory.EXPECT().NewAnalyticsRepository().Return(analyticsRepo)

				userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
					Run(func(_ context.Context, user *entity.User) { created = user }).
					Return(nil)
				authRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
					return auth.Provider == entity.ProviderEmail && auth.PasswordHash == "hashed"
				})).Return(nil)
				analyticsRepo.EXPECT().Record(ctx, mock.MatchedBy(func(event *entity.AnalyticsEvent) bool {
					return event.Type == entity.AnalyticsUserSignedUp
				})).Return(nil)
			})
			fx.expectTokens(tt.wantRole)

			output, err := fx.service.Register(ctx, &usecase.RegisterInput{
				Name:     "Ada",
				Email:    tt.email,
				Password: "s3cretpass",
			})

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.wantRole, output.User.Role)
			assert.Equal(t, created.ID, output.User.ID)
			assert.Equal(t, "access", output.AccessToken)
			assert.Equal(t, int64(900), output.ExpiresIn)
			assert.True(t, output.User.TotalSpent.IsZero())
			assert.False(t, output.User.IsRegular)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().Create(ctx, mock.Anything).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cretpass"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("short").Return("", domainerrors.ErrPasswordTooWeak.WithDetails("too short"))

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "ada@example.com", Password: "short"})

	assert.Nil(t, output)
	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "PASSWORD_TOO_WEAK", appErr.ErrorCode())
}

func TestAuthService_Login(t *testing.T) {
	user := newUser(entity.RoleAdmin)
	credential := &entity.Authentication{UserID: user.ID, Provider: entity.ProviderEmail, PasswordHash: "hashed"}

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.authRepo.EXPECT().FindByUserID(ctx, user.ID, entity.ProviderEmail).Return(credential, nil)
		fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
		fx.expectTokens(entity.RoleAdmin)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
		assert.Equal(t, "refresh", output.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.authRepo.EXPECT().FindByUserID(ctx, user.ID, entity.ProviderEmail).Return(credential, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "s3cretpass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	user := newUser(entity.RoleAdmin)

	t.Run("reloads the current role", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh-token").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.expectTokens(entity.RoleAdmin)

		output, err := fx.service.Refresh(ctx, "refresh-token")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, output.User.Role)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("access-token").
			Return(&service.Claims{UserID: user.ID, Role: entity.RoleAdmin, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.Refresh(context.Background(), "access-token")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh-token").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Refresh(ctx, "refresh-token")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
