package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
	userRepo    *mockRepo.MockUserRepository
	gateway     *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
	}
	svc := NewPaymentService(PaymentServiceParams{
		OrderRepo:   fx.orderRepo,
		PaymentRepo: fx.paymentRepo,
		UserRepo:    fx.userRepo,
		Gateway:     fx.gateway,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*paymentService).now = clock
	fx.service = svc

	return fx
}

func pendingOrder(userID uuid.UUID, total string) *entity.Order {
	return &entity.Order{
		ID:     uuid.MustParse("5f0c8a31-7d2e-4e9b-9a51-2b7f3c9d1e00"),
		UserID: userID,
		Total:  dec(total),
		Status: entity.OrderPending,
	}
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	user := newUser(entity.RoleClient)
	order := pendingOrder(user.ID, "27000")
	wantReference := "ORD-1773482400000-5f0c8a31"

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.gateway.EXPECT().InitializePayment(ctx, mock.MatchedBy(func(req *service.InitializePaymentRequest) bool {
		return req.Email == user.Email &&
			req.Amount.Equal(dec("27000")) &&
			req.Commission.Equal(dec("1350")) &&
			req.Reference == wantReference &&
			req.CallbackURL == "https://shop.test/checkout/callback" &&
			req.Metadata["order_id"] == order.ID.String()
	})).Return(&service.InitializePaymentResult{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        wantReference,
	}, nil)
	fx.paymentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentPending &&
			p.Reference == wantReference &&
			p.FeeCollected.Equal(dec("1350")) &&
			p.AdminEarning.Equal(dec("25650"))
	})).Return(nil)

	output, err := fx.service.InitiatePayment(ctx, user.ID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", output.AuthorizationURL)
	assert.Equal(t, wantReference, output.Reference)
	assert.True(t, output.Split.Total.Equal(dec("27000")))
	assert.True(t, output.Split.PlatformCommission.Add(output.Split.AdminRevenue).Equal(output.Split.Total))
}

func TestPaymentService_InitiatePayment_Rejections(t *testing.T) {
	user := newUser(entity.RoleClient)

	t.Run("someone else's order", func(t *testing.T) {
		fx := createTestPaymentService(t)
		order := pendingOrder(uuid.New(), "1000")
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.InitiatePayment(context.Background(), user.ID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("already paid", func(t *testing.T) {
		fx := createTestPaymentService(t)
		order := pendingOrder(user.ID, "1000")
		order.Status = entity.OrderPaid
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.InitiatePayment(context.Background(), user.ID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
	})

	t.Run("provider says no", func(t *testing.T) {
		fx := createTestPaymentService(t)
		order := pendingOrder(user.ID, "1000")
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.gateway.EXPECT().InitializePayment(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(&service.GatewayError{StatusCode: 400, Message: "Invalid subaccount"}, "initialize"))

		_, err := fx.service.InitiatePayment(context.Background(), user.ID, order.ID)

		require.ErrorIs(t, err, domainerrors.ErrPaymentProviderRejected)
		appErr, ok := err.(domainerrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "Invalid subaccount", appErr.Details())
	})

	t.Run("provider unreachable", func(t *testing.T) {
		fx := createTestPaymentService(t)
		order := pendingOrder(user.ID, "1000")
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.gateway.EXPECT().InitializePayment(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: timeout"))

		_, err := fx.service.InitiatePayment(context.Background(), user.ID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderUnavailable)
	})
}

func TestPaymentService_GetPayment(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	payment := &entity.Payment{Reference: "ORD-1-abc", UserID: uuid.New(), Status: entity.PaymentPending}

	fx.paymentRepo.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil).Twice()

	_, err := fx.service.GetPayment(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleClient}, payment.Reference)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)

	got, err := fx.service.GetPayment(ctx, usecase.Actor{UserID: payment.UserID, Role: entity.RoleClient}, payment.Reference)
	require.NoError(t, err)
	assert.Equal(t, payment, got)
}
