package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	svc := NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		UserRepo:  fx.userRepo,
		QRService: fx.qrService,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	svc.(*orderService).now = clock
	fx.service = svc

	return fx
}

type checkoutRepos struct {
	cart      *mockRepo.MockCartRepository
	discount  *mockRepo.MockDiscountRepository
	order     *mockRepo.MockOrderRepository
	product   *mockRepo.MockProductRepository
	analytics *mockRepo.MockAnalyticsRepository
}

// wire registers the repositories PlaceOrder asks for; order, product and
// analytics are only requested when checkout gets that far.
func (r checkoutRepos) wire(factory *mockRepo.MockRepositoryFactory, full bool) {
	factory.EXPECT().NewCartRepository().Return(r.cart)
	factory.EXPECT().NewDiscountRepository().Return(r.discount)
	if full {
		factory.EXPECT().NewOrderRepository().Return(r.order)
		factory.EXPECT().NewProductRepository().Return(r.product)
		factory.EXPECT().NewAnalyticsRepository().Return(r.analytics)
	}
}

func newCheckoutRepos(t *testing.T) checkoutRepos {
	return checkoutRepos{
		cart:      mockRepo.NewMockCartRepository(t),
		discount:  mockRepo.NewMockDiscountRepository(t),
		order:     mockRepo.NewMockOrderRepository(t),
		product:   mockRepo.NewMockProductRepository(t),
		analytics: mockRepo.NewMockAnalyticsRepository(t),
	}
}

func TestOrderService_PlaceOrder_TwoCakesWithWelcome10(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	user := newUser(entity.RoleClient)
	cake := newProduct("Chocolate cake", "15000", 5)
	discount := welcome10()
	repos := newCheckoutRepos(t)

	var stored *entity.Order
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repos.wire(factory, true)
		repos.cart.EXPECT().ListByUser(ctx, user.ID).
			Return([]*entity.CartItem{{UserID: user.ID, ProductID: cake.ID, Quantity: 2, Product: cake}}, nil)
		repos.discount.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
		repos.discount.EXPECT().HasRedeemed(ctx, user.ID, discount.ID).Return(false, nil)
		repos.order.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) { stored = order }).
			Return(nil)
		repos.discount.EXPECT().IncrementUsage(ctx, discount.ID).Return(nil)
		repos.discount.EXPECT().RecordRedemption(ctx, mock.MatchedBy(func(r *entity.UserDiscount) bool {
			return r.UserID == user.ID && r.DiscountID == discount.ID && r.OrderID == stored.ID
		})).Return(nil)
		repos.product.EXPECT().DecrementStock(ctx, cake.ID, 2).Return(nil)
		repos.cart.EXPECT().Clear(ctx, user.ID).Return(nil)
		repos.analytics.EXPECT().Record(ctx, mock.MatchedBy(func(e *entity.AnalyticsEvent) bool {
			return e.Type == entity.AnalyticsOrderPlaced && *e.UserID == user.ID
		})).Return(nil)
	})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.Type == entity.EventOrderPlaced && e.Recipient == user.Email && e.Data["total"] == "27000.00"
	})).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, user.ID, &usecase.PlaceOrderInput{
		DeliveryAddress: "12 Bakery Lane",
		DiscountCode:    "welcome10",
	})

	require.NoError(t, err)
	assert.Same(t, stored, order)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, order.Subtotal.Equal(dec("30000")))
	assert.True(t, order.Discount.Equal(dec("3000")))
	assert.True(t, order.Total.Equal(dec("27000")))
	assert.True(t, order.PlatformFee.Equal(dec("1350")))
	assert.True(t, order.AdminRevenue.Equal(dec("25650")))
	assert.Equal(t, "WELCOME10", order.DiscountCode)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].PriceSnapshot.Equal(dec("15000")))
	assert.True(t, order.Items[0].LineTotal.Equal(dec("30000")))
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	userID := uuid.New()

	t.Run("blank address", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.PlaceOrder(context.Background(), userID, &usecase.PlaceOrderInput{DeliveryAddress: "  "})

		assert.ErrorIs(t, err, domainerrors.ErrDeliveryAddressRequired)
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		repos := newCheckoutRepos(t)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewCartRepository().Return(repos.cart)
			repos.cart.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		})

		_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{DeliveryAddress: "12 Bakery Lane"})

		assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	})

	t.Run("stock taken by a concurrent order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		cake := newProduct("Chocolate cake", "15000", 2)
		repos := newCheckoutRepos(t)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewCartRepository().Return(repos.cart)
			factory.EXPECT().NewDiscountRepository().Return(repos.discount)
			factory.EXPECT().NewOrderRepository().Return(repos.order)
			factory.EXPECT().NewProductRepository().Return(repos.product)
			repos.cart.EXPECT().ListByUser(ctx, userID).
				Return([]*entity.CartItem{{ProductID: cake.ID, Quantity: 2, Product: cake}}, nil)
			repos.order.EXPECT().Create(ctx, mock.Anything).Return(nil)
			repos.product.EXPECT().DecrementStock(ctx, cake.ID, 2).Return(repository.ErrInsufficientStock)
		})

		_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{DeliveryAddress: "12 Bakery Lane"})

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	})

	t.Run("discount cap reached at redemption", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		cake := newProduct("Chocolate cake", "15000", 2)
		discount := welcome10()
		repos := newCheckoutRepos(t)

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewCartRepository().Return(repos.cart)
			factory.EXPECT().NewDiscountRepository().Return(repos.discount)
			factory.EXPECT().NewOrderRepository().Return(repos.order)
			repos.cart.EXPECT().ListByUser(ctx, userID).
				Return([]*entity.CartItem{{ProductID: cake.ID, Quantity: 1, Product: cake}}, nil)
			repos.discount.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
			repos.discount.EXPECT().HasRedeemed(ctx, userID, discount.ID).Return(false, nil)
			repos.order.EXPECT().Create(ctx, mock.Anything).Return(nil)
			repos.discount.EXPECT().IncrementUsage(ctx, discount.ID).Return(repository.ErrDiscountUsageExhausted)
		})

		_, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
			DeliveryAddress: "12 Bakery Lane",
			DiscountCode:    "WELCOME10",
		})

		assert.ErrorIs(t, err, domainerrors.ErrDiscountUsageLimitReached)
	})
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	owner := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: owner, Status: entity.OrderPending}

	tests := []struct {
		name    string
		actor   usecase.Actor
		wantErr error
	}{
		{name: "owner", actor: usecase.Actor{UserID: owner, Role: entity.RoleClient}},
		{name: "admin", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "other client", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleClient}, wantErr: domainerrors.ErrOrderOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

			got, err := fx.service.GetOrder(context.Background(), tt.actor, order.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("PAID is reserved for settlement", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderPaid)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
	})

	t.Run("illegal transition", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), Status: entity.OrderPending}
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.UpdateStatus(context.Background(), order.ID, entity.OrderDelivered)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
	})

	t.Run("cancel restocks items and notifies", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		user := newUser(entity.RoleClient)
		productID := uuid.New()
		order := &entity.Order{
			ID:     uuid.New(),
			UserID: user.ID,
			Status: entity.OrderPaid,
			Items:  []*entity.OrderItem{{ProductID: productID, Quantity: 3}},
		}

		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderPaid, entity.OrderCancelled).Return(nil)
			productRepo.EXPECT().IncrementStock(ctx, productID, 3).Return(nil)
		})
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
			return e.Type == entity.EventOrderStatusChanged && e.Data["previous_status"] == "PAID"
		})).Return(errors.New("broker down"))

		updated, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderCancelled)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, updated.Status)
	})

	t.Run("cancelling an unpaid order releases its discount", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		user := newUser(entity.RoleClient)
		productID := uuid.New()
		order := &entity.Order{
			ID:           uuid.New(),
			UserID:       user.ID,
			Status:       entity.OrderPending,
			DiscountCode: "WELCOME10",
			Items:        []*entity.OrderItem{{ProductID: productID, Quantity: 2}},
		}

		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			discountRepo := mockRepo.NewMockDiscountRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewDiscountRepository().Return(discountRepo)
			orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderPending, entity.OrderCancelled).Return(nil)
			productRepo.EXPECT().IncrementStock(ctx, productID, 2).Return(nil)
			discountRepo.EXPECT().ReleaseRedemption(ctx, order.ID).Return(nil)
		})
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderCancelled)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, updated.Status)
	})

	t.Run("release failure rolls the cancellation back", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := &entity.Order{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			Status:       entity.OrderPending,
			DiscountCode: "WELCOME10",
		}

		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			discountRepo := mockRepo.NewMockDiscountRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
			factory.EXPECT().NewDiscountRepository().Return(discountRepo)
			orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderPending, entity.OrderCancelled).Return(nil)
			discountRepo.EXPECT().ReleaseRedemption(ctx, order.ID).Return(errors.New("db down"))
		})

		_, err := fx.service.UpdateStatus(ctx, order.ID, entity.OrderCancelled)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to release discount redemption")
	})
}

func TestOrderService_Pickup(t *testing.T) {
	t.Run("QR only for paid orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := uuid.New()
		order := &entity.Order{ID: uuid.New(), UserID: owner, Status: entity.OrderPending}
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := fx.service.PickupQR(context.Background(), usecase.Actor{UserID: owner, Role: entity.RoleClient}, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
	})

	t.Run("QR for a paid order", func(t *testing.T) {
		fx := createTestOrderService(t)
		owner := uuid.New()
		order := &entity.Order{ID: uuid.New(), UserID: owner, Status: entity.OrderPaid}
		fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		fx.qrService.EXPECT().GeneratePickupQR(order.ID).Return([]byte("png"), nil)

		png, err := fx.service.PickupQR(context.Background(), usecase.Actor{UserID: owner, Role: entity.RoleClient}, order.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unreadable code", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.qrService.EXPECT().ParsePickupQR("garbage").Return(uuid.Nil, errors.New("bad code"))

		_, err := fx.service.RedeemPickup(context.Background(), "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupCode)
	})
}
