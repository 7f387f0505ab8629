package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	platform    *config.PlatformConfig
	callbackURL string
	logger      *slog.Logger
	now         func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
	Gateway     service.PaymentGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	callbackURL := ""
	if params.Config != nil && params.Config.Paystack != nil {
		callbackURL = params.Config.Paystack.CallbackURL
	}

	return &paymentService{
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		userRepo:    params.UserRepo,
		gateway:     params.Gateway,
		platform:    platformConfig(params.Config),
		callbackURL: callbackURL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiatePayment starts a split payment for one of the caller's pending orders.
// The pending payment is stored only after the provider accepts the request.
func (srv *paymentService) InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*usecase.InitiatePaymentOutput, error) {
	order, err := findOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}
	switch order.Status {
	case entity.OrderPending:
	case entity.OrderCancelled:
		return nil, domainerrors.ErrOrderNotPayable.WithDetails("order was cancelled")
	default:
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payer")
	}

	now := srv.now().UTC()
	split := entity.SplitCommission(order.Total, srv.platform.FeePercentage)
	reference := paymentReference(order.ID, now)

	result, err := srv.gateway.InitializePayment(ctx, &service.InitializePaymentRequest{
		Email:       user.Email,
		Amount:      split.Total,
		Commission:  split.PlatformCommission,
		Reference:   reference,
		CallbackURL: srv.callbackURL,
		Metadata: map[string]string{
			"order_id": order.ID.String(),
			"user_id":  userID.String(),
		},
	})
	if err != nil {
		var gatewayErr *service.GatewayError
		if errors.As(err, &gatewayErr) {
			srv.log(ctx).Warn("Payment provider rejected initialization",
				slog.String("orderID", orderID.String()),
				slog.Int("status", gatewayErr.StatusCode),
				slog.String("message", gatewayErr.Message))

			return nil, domainerrors.ErrPaymentProviderRejected.WithDetails(gatewayErr.Message)
		}
		srv.log(ctx).Error("Payment provider unavailable", slog.String("orderID", orderID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentProviderUnavailable
	}
	if result.Reference != "" {
		reference = result.Reference
	}

	payment := entity.NewPendingPayment(order, reference, split, now)
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to store payment")
	}

	srv.log(ctx).Info("Payment initialized",
		slog.String("orderID", orderID.String()),
		slog.String("reference", reference),
		slog.String("amount", split.Total.StringFixed(2)),
		slog.String("commission", split.PlatformCommission.StringFixed(2)))

	return &usecase.InitiatePaymentOutput{
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        reference,
		Split:            split,
	}, nil
}

func (srv *paymentService) GetPayment(ctx context.Context, actor usecase.Actor, reference string) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}
	if payment.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return payment, nil
}

// paymentReference is unique per attempt: ORD-<unix millis>-<first 8 chars of the order id>.
func paymentReference(orderID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), orderID.String()[:8])
}
