package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settlementService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	platform    *config.PlatformConfig
	logger      *slog.Logger
	now         func() time.Time
}

// SettlementServiceParams holds dependencies for SettlementService, injected by Fx.
type SettlementServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSettlementService is the constructor for settlementService.
func NewSettlementService(params SettlementServiceParams) usecase.SettlementUsecase {
	return &settlementService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		userRepo:    params.UserRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		platform:    platformConfig(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *settlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleWebhook verifies and applies one provider delivery. Replays of an
// already-settled payment report SettlementDuplicate and write nothing.
func (srv *settlementService) HandleWebhook(ctx context.Context, body []byte, signature string) (usecase.SettlementOutcome, error) {
	event, err := srv.gateway.VerifyWebhook(body, signature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWebhookSignature):
			srv.log(ctx).Warn("Rejected webhook with invalid signature")

			return "", domainerrors.ErrInvalidWebhookSignature
		case errors.Is(err, service.ErrInvalidWebhookPayload):
			return "", domainerrors.ErrInvalidWebhookPayload.WithDetails(err.Error())
		default:
			return "", errors.Wrap(err, "failed to verify webhook")
		}
	}

	logger := srv.log(ctx).With(slog.String("event", event.Event), slog.String("reference", event.Reference))

	switch event.Event {
	case service.WebhookChargeSuccess, service.WebhookChargeFailed:
		if event.Reference == "" {
			return "", domainerrors.ErrInvalidWebhookPayload.WithDetails("missing reference")
		}
	default:
		logger.Debug("Ignoring webhook event")

		return usecase.SettlementIgnored, nil
	}

	var outcome usecase.SettlementOutcome
	if event.Event == service.WebhookChargeSuccess {
		outcome, err = srv.settleSuccess(ctx, logger, event)
	} else {
		outcome, err = srv.settleFailure(ctx, logger, event)
	}
	if err != nil {
		logger.Error("Webhook settlement failed", slog.Any("error", err))

		return "", err
	}

	logger.Info("Webhook processed", slog.String("outcome", string(outcome)))

	return outcome, nil
}

func (srv *settlementService) settleSuccess(ctx context.Context, logger *slog.Logger, event *service.WebhookEvent) (usecase.SettlementOutcome, error) {
	var (
		payment  *entity.Payment
		upgraded bool
		outcome  = usecase.SettlementApplied
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := srv.now().UTC()
		paymentRepo := repoFactory.NewPaymentRepository()

		var err error
		payment, err = findPayment(ctx, paymentRepo, event.Reference)
		if err != nil {
			return err
		}
		switch payment.Status {
		case entity.PaymentSuccess:
			outcome = usecase.SettlementDuplicate

			return nil
		case entity.PaymentFailed:
			logger.Error("Success reported for a failed payment", slog.String("paymentID", payment.ID.String()))
			outcome = usecase.SettlementIgnored

			return nil
		}

		if event.AmountMinor != payment.AmountInMinorUnits() {
			return domainerrors.ErrPaymentAmountMismatch.WithDetails("provider amount does not match the payment")
		}

		if err := payment.Succeed(event.ProviderEventID, now); err != nil {
			return errors.Wrap(err, "failed to settle payment")
		}
		applied, err := paymentRepo.CompareAndSetStatus(ctx, payment, entity.PaymentPending)
		if err != nil {
			return errors.Wrap(err, "failed to update payment status")
		}
		if !applied {
			outcome = usecase.SettlementDuplicate

			return nil
		}

		err = repoFactory.NewOrderRepository().UpdateStatus(ctx, payment.OrderID, entity.OrderPending, entity.OrderPaid)
		switch {
		case errors.Is(err, repository.ErrOrderStatusChanged):
			logger.Warn("Payment settled for an order that is no longer pending", slog.String("orderID", payment.OrderID.String()))
		case err != nil:
			return errors.Wrap(err, "failed to mark order paid")
		}

		upgraded, err = repoFactory.NewUserRepository().AddTotalSpent(ctx, payment.UserID, payment.Amount, srv.platform.RegularCustomerThreshold)
		if err != nil {
			return errors.Wrap(err, "failed to update customer spend")
		}

		if err := repoFactory.NewLedgerRepository().Append(ctx, entity.SettlementLedgerEntries(payment, now)...); err != nil {
			return errors.Wrap(err, "failed to append ledger entries")
		}

		userID := payment.UserID
		paid := &entity.AnalyticsEvent{
			UserID:    &userID,
			Type:      entity.AnalyticsPaymentMade,
			Payload:   map[string]any{"reference": payment.Reference, "amount": payment.Amount.StringFixed(2)},
			CreatedAt: now,
		}
		if err := repoFactory.NewAnalyticsRepository().Record(ctx, paid); err != nil {
			return errors.Wrap(err, "failed to record payment analytics")
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	if outcome != usecase.SettlementApplied {
		return outcome, nil
	}

	user := srv.recipient(ctx, logger, payment)
	events := []*entity.DomainEvent{
		entity.NewDomainEvent(entity.EventPaymentSucceeded, payment.OrderID, user, paymentEventData(payment)),
	}
	if upgraded {
		logger.Info("Customer became a regular", slog.String("userID", payment.UserID.String()))
		data := map[string]any{"user_id": payment.UserID.String()}
		if user != nil {
			data["total_spent"] = user.TotalSpent.StringFixed(2)
		}
		events = append(events, entity.NewDomainEvent(entity.EventUserTierUpgraded, payment.UserID, user, data))
	}
	publishEvents(ctx, srv.publisher, logger, events...)

	return outcome, nil
}

// settleFailure marks the attempt FAILED. The order stays PENDING so the customer can retry.
func (srv *settlementService) settleFailure(ctx context.Context, logger *slog.Logger, event *service.WebhookEvent) (usecase.SettlementOutcome, error) {
	payment, err := findPayment(ctx, srv.paymentRepo, event.Reference)
	if err != nil {
		return "", err
	}
	if payment.Status != entity.PaymentPending {
		return usecase.SettlementDuplicate, nil
	}

	if err := payment.Fail(event.ProviderEventID, srv.now().UTC()); err != nil {
		return "", errors.Wrap(err, "failed to fail payment")
	}
	applied, err := srv.paymentRepo.CompareAndSetStatus(ctx, payment, entity.PaymentPending)
	if err != nil {
		return "", errors.Wrap(err, "failed to update payment status")
	}
	if !applied {
		return usecase.SettlementDuplicate, nil
	}

	publishEvents(ctx, srv.publisher, logger, entity.NewDomainEvent(
		entity.EventPaymentFailed, payment.OrderID, srv.recipient(ctx, logger, payment), paymentEventData(payment)))

	return usecase.SettlementFailed, nil
}

func (srv *settlementService) recipient(ctx context.Context, logger *slog.Logger, payment *entity.Payment) *entity.User {
	user, err := srv.userRepo.FindByID(ctx, payment.UserID)
	if err != nil {
		logger.Warn("Failed to load payer for notification", slog.Any("error", err))

		return nil
	}

	return user
}

func findPayment(ctx context.Context, paymentRepo repository.PaymentRepository, reference string) (*entity.Payment, error) {
	payment, err := paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

func paymentEventData(payment *entity.Payment) map[string]any {
	return map[string]any{
		"order_id":  payment.OrderID.String(),
		"reference": payment.Reference,
		"amount":    payment.Amount.StringFixed(2),
		"status":    string(payment.Status),
	}
}
