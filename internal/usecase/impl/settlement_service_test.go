package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
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

var webhookBody = []byte(`{"event":"charge.success"}`)

type settlementServiceFixtures struct {
	service     usecase.SettlementUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	userRepo    *mockRepo.MockUserRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
}

func createTestSettlementService(t *testing.T) settlementServiceFixtures {
	fx := settlementServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	svc := NewSettlementService(SettlementServiceParams{
		TxManager:   fx.txManager,
		PaymentRepo: fx.paymentRepo,
		UserRepo:    fx.userRepo,
		Gateway:     fx.gateway,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*settlementService).now = clock
	fx.service = svc

	return fx
}

func pendingPayment(userID uuid.UUID, amount string) *entity.Payment {
	order := &entity.Order{ID: uuid.New(), UserID: userID}
	split := entity.SplitCommission(dec(amount), dec("5"))

	return entity.NewPendingPayment(order, "ORD-1773482400000-5f0c8a31", split, fixedNow)
}

func successEvent(payment *entity.Payment) *service.WebhookEvent {
	return &service.WebhookEvent{
		Event:           service.WebhookChargeSuccess,
		ProviderEventID: "4099260516",
		Reference:       payment.Reference,
		AmountMinor:     payment.AmountInMinorUnits(),
		Status:          "success",
	}
}

type settlementRepos struct {
	payment   *mockRepo.MockPaymentRepository
	order     *mockRepo.MockOrderRepository
	user      *mockRepo.MockUserRepository
	ledger    *mockRepo.MockLedgerRepository
	analytics *mockRepo.MockAnalyticsRepository
}

func newSettlementRepos(t *testing.T) settlementRepos {
	return settlementRepos{
		payment:   mockRepo.NewMockPaymentRepository(t),
		order:     mockRepo.NewMockOrderRepository(t),
		user:      mockRepo.NewMockUserRepository(t),
		ledger:    mockRepo.NewMockLedgerRepository(t),
		analytics: mockRepo.NewMockAnalyticsRepository(t),
	}
}

func TestSettlementService_ChargeSuccess_AppliesOnce(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	user := newUser(entity.RoleClient)
	payment := pendingPayment(user.ID, "27000")
	repos := newSettlementRepos(t)

	fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(successEvent(payment), nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPaymentRepository().Return(repos.payment)
		factory.EXPECT().NewOrderRepository().Return(repos.order)
		factory.EXPECT().NewUserRepository().Return(repos.user)
		factory.EXPECT().NewLedgerRepository().Return(repos.ledger)
		factory.EXPECT().NewAnalyticsRepository().Return(repos.analytics)

		repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
		repos.payment.EXPECT().CompareAndSetStatus(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.Status == entity.PaymentSuccess && p.ProviderEventID == "4099260516" && p.PaidAt.Equal(fixedNow)
		}), entity.PaymentPending).Return(true, nil)
		repos.order.EXPECT().UpdateStatus(ctx, payment.OrderID, entity.OrderPending, entity.OrderPaid).Return(nil)
		repos.user.EXPECT().AddTotalSpent(ctx, user.ID, decEq("27000"), decEq("50000")).Return(false, nil)
		repos.ledger.EXPECT().Append(ctx, mock.MatchedBy(func(entries []*entity.LedgerEntry) bool {
			return len(entries) == 2 &&
				entries[0].Kind == entity.LedgerSale && entries[0].Amount.Equal(dec("27000")) &&
				entries[1].Kind == entity.LedgerCommission && entries[1].Amount.Equal(dec("1350"))
		})).Return(nil)
		repos.analytics.EXPECT().Record(ctx, mock.Anything).Return(nil)
	})
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.Type == entity.EventPaymentSucceeded && e.AggregateID == payment.OrderID
	})).Return(nil).Once()

	outcome, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

	require.NoError(t, err)
	assert.Equal(t, usecase.SettlementApplied, outcome)
}

func TestSettlementService_ChargeSuccess_TierUpgradePublishesTwoEvents(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	user := newUser(entity.RoleClient)
	payment := pendingPayment(user.ID, "10000")
	repos := newSettlementRepos(t)

	fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(successEvent(payment), nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPaymentRepository().Return(repos.payment)
		factory.EXPECT().NewOrderRepository().Return(repos.order)
		factory.EXPECT().NewUserRepository().Return(repos.user)
		factory.EXPECT().NewLedgerRepository().Return(repos.ledger)
		factory.EXPECT().NewAnalyticsRepository().Return(repos.analytics)

		repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
		repos.payment.EXPECT().CompareAndSetStatus(ctx, mock.Anything, entity.PaymentPending).Return(true, nil)
		repos.order.EXPECT().UpdateStatus(ctx, payment.OrderID, entity.OrderPending, entity.OrderPaid).Return(nil)
		repos.user.EXPECT().AddTotalSpent(ctx, user.ID, decEq("10000"), decEq("50000")).Return(true, nil)
		repos.ledger.EXPECT().Append(ctx, mock.Anything).Return(nil)
		repos.analytics.EXPECT().Record(ctx, mock.Anything).Return(nil)
	})
	user.TotalSpent = dec("55000")
	user.IsRegular = true
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.Type == entity.EventPaymentSucceeded
	})).Return(nil).Once()
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.Type == entity.EventUserTierUpgraded && e.Data["total_spent"] == "55000.00"
	})).Return(nil).Once()

	outcome, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

	require.NoError(t, err)
	assert.Equal(t, usecase.SettlementApplied, outcome)
}

func TestSettlementService_ChargeSuccess_Replays(t *testing.T) {
	user := newUser(entity.RoleClient)

	t.Run("already settled payment writes nothing", func(t *testing.T) {
		fx := createTestSettlementService(t)
		ctx := context.Background()
		payment := pendingPayment(user.ID, "27000")
		event := successEvent(payment)
		require.NoError(t, payment.Succeed("4099260516", fixedNow))
		repos := newSettlementRepos(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(event, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewPaymentRepository().Return(repos.payment)
			repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
		})

		outcome, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

		require.NoError(t, err)
		assert.Equal(t, usecase.SettlementDuplicate, outcome)
	})

	t.Run("concurrent delivery loses the compare-and-set", func(t *testing.T) {
		fx := createTestSettlementService(t)
		ctx := context.Background()
		payment := pendingPayment(user.ID, "27000")
		repos := newSettlementRepos(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(successEvent(payment), nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewPaymentRepository().Return(repos.payment)
			repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
			repos.payment.EXPECT().CompareAndSetStatus(ctx, mock.Anything, entity.PaymentPending).Return(false, nil)
		})

		outcome, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

		require.NoError(t, err)
		assert.Equal(t, usecase.SettlementDuplicate, outcome)
	})
}

func TestSettlementService_ChargeSuccess_Rejections(t *testing.T) {
	user := newUser(entity.RoleClient)

	t.Run("amount mismatch", func(t *testing.T) {
		fx := createTestSettlementService(t)
		ctx := context.Background()
		payment := pendingPayment(user.ID, "27000")
		event := successEvent(payment)
		event.AmountMinor = 100
		repos := newSettlementRepos(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(event, nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewPaymentRepository().Return(repos.payment)
			repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
		})

		_, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

		assert.ErrorIs(t, err, domainerrors.ErrPaymentAmountMismatch)
	})

	t.Run("unknown reference", func(t *testing.T) {
		fx := createTestSettlementService(t)
		ctx := context.Background()
		payment := pendingPayment(user.ID, "27000")
		repos := newSettlementRepos(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(successEvent(payment), nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewPaymentRepository().Return(repos.payment)
			repos.payment.EXPECT().FindByReference(ctx, payment.Reference).Return(nil, repository.ErrPaymentNotFound)
		})

		_, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

		assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestSettlementService(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "forged").Return(nil, service.ErrInvalidWebhookSignature)

		_, err := fx.service.HandleWebhook(context.Background(), webhookBody, "forged")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookSignature)
	})

	t.Run("malformed payload", func(t *testing.T) {
		fx := createTestSettlementService(t)

		fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").
			Return(nil, errors.Wrap(service.ErrInvalidWebhookPayload, "unexpected EOF"))

		_, err := fx.service.HandleWebhook(context.Background(), webhookBody, "sig")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookPayload)
	})
}

func TestSettlementService_ChargeFailed_LeavesOrderPending(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	user := newUser(entity.RoleClient)
	payment := pendingPayment(user.ID, "27000")
	event := successEvent(payment)
	event.Event = service.WebhookChargeFailed

	fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").Return(event, nil)
	fx.paymentRepo.EXPECT().FindByReference(ctx, payment.Reference).Return(payment, nil)
	fx.paymentRepo.EXPECT().CompareAndSetStatus(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentFailed
	}), entity.PaymentPending).Return(true, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
		return e.Type == entity.EventPaymentFailed
	})).Return(nil)

	outcome, err := fx.service.HandleWebhook(ctx, webhookBody, "sig")

	require.NoError(t, err)
	assert.Equal(t, usecase.SettlementFailed, outcome)
}

func TestSettlementService_OtherEventsAreIgnored(t *testing.T) {
	fx := createTestSettlementService(t)

	fx.gateway.EXPECT().VerifyWebhook(webhookBody, "sig").
		Return(&service.WebhookEvent{Event: "transfer.success", Reference: "TRF-1"}, nil)

	outcome, err := fx.service.HandleWebhook(context.Background(), webhookBody, "sig")

	require.NoError(t, err)
	assert.Equal(t, usecase.SettlementIgnored, outcome)
}
