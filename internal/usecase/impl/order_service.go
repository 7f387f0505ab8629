package impl

import (
	"context"
	"log/slog"
	"strings"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	platform  *config.PlatformConfig
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		platform:  platformConfig(params.Config),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder converts the caller's cart into a PENDING order. Pricing, discount
// redemption, stock reservation and clearing the cart commit together or not at all.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	address := strings.TrimSpace(input.DeliveryAddress)
	if address == "" {
		return nil, domainerrors.ErrDeliveryAddressRequired
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := srv.now().UTC()

		items, err := repoFactory.NewCartRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		lines, err := orderLinesFromCart(items)
		if err != nil {
			return err
		}

		discountRepo := repoFactory.NewDiscountRepository()
		var discount *entity.Discount
		discountAmount := decimal.Zero
		if strings.TrimSpace(input.DiscountCode) != "" {
			discount, discountAmount, err = evaluateDiscount(ctx, discountRepo, userID, input.DiscountCode, entity.SubtotalOf(lines), now)
			if err != nil {
				return err
			}
		}

		totals := entity.PriceOrder(lines, discountAmount, srv.platform.ShippingFee, srv.platform.FeePercentage)
		order = newOrder(userID, address, lines, totals, discount, now)

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if discount != nil {
			if err := redeemDiscount(ctx, discountRepo, discount, userID, order.ID, now); err != nil {
				return err
			}
		}

		productRepo := repoFactory.NewProductRepository()
		for _, line := range lines {
			if err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(line.Name + " sold out while placing the order")
				}

				return errors.Wrap(err, "failed to reserve stock")
			}
		}

		if err := repoFactory.NewCartRepository().Clear(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		placed := &entity.AnalyticsEvent{
			UserID:    &userID,
			Type:      entity.AnalyticsOrderPlaced,
			Payload:   map[string]any{"order_id": order.ID.String(), "total": order.Total.StringFixed(2)},
			CreatedAt: now,
		}
		if err := repoFactory.NewAnalyticsRepository().Record(ctx, placed); err != nil {
			return errors.Wrap(err, "failed to record order analytics")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.String("discountCode", order.DiscountCode))

	publishEvents(ctx, srv.publisher, srv.log(ctx), entity.NewDomainEvent(
		entity.EventOrderPlaced, order.ID, srv.recipient(ctx, userID), orderEventData(order)))

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := findOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.OrderPage, error) {
	return srv.ListOrders(ctx, entity.OrderFilter{UserID: &userID, Page: page, PageSize: pageSize})
}

func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(filter.Status))
	}
	filter.Normalize()

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

// UpdateStatus moves an order along its fulfilment path. PAID is reserved for
// settlement. Cancelling returns the reserved stock and, for an unpaid order, the
// discount redemption.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}
	if status == entity.OrderPaid {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails("orders are marked PAID by payment settlement")
	}

	order, err := findOrder(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	if !previous.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails(string(previous) + " cannot move to " + string(status))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().UpdateStatus(ctx, orderID, previous, status); err != nil {
			if errors.Is(err, repository.ErrOrderStatusChanged) {
				return domainerrors.ErrInvalidOrderTransition.WithDetails("order was updated concurrently, reload and retry")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		if status != entity.OrderCancelled {
			return nil
		}
		productRepo := repoFactory.NewProductRepository()
		for _, item := range order.Items {
			if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restock cancelled order")
			}
		}

		// An unpaid order never consumed its code, so the customer gets it back.
		if previous == entity.OrderPending && order.DiscountCode != "" {
			if err := repoFactory.NewDiscountRepository().ReleaseRedemption(ctx, orderID); err != nil {
				return errors.Wrap(err, "failed to release discount redemption")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = srv.now().UTC()

	srv.log(ctx).Info("Order status changed",
		slog.String("orderID", orderID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))

	data := orderEventData(order)
	data["previous_status"] = string(previous)
	publishEvents(ctx, srv.publisher, srv.log(ctx), entity.NewDomainEvent(
		entity.EventOrderStatusChanged, order.ID, srv.recipient(ctx, order.UserID), data))

	return order, nil
}

// PickupQR renders the pickup code for a paid order.
func (srv *orderService) PickupQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entity.OrderDelivered) {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails("a pickup code is available once the order is paid")
	}

	png, err := srv.qrService.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return png, nil
}

// RedeemPickup marks the order encoded in a scanned pickup code as DELIVERED.
func (srv *orderService) RedeemPickup(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrService.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidPickupCode
	}

	return srv.UpdateStatus(ctx, orderID, entity.OrderDelivered)
}

// recipient loads the user an event is addressed to. Events are still sent without one.
func (srv *orderService) recipient(ctx context.Context, userID uuid.UUID) *entity.User {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load event recipient", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil
	}

	return user
}

func orderLinesFromCart(items []*entity.CartItem) ([]entity.OrderLine, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	lines := make([]entity.OrderLine, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || !product.IsActive {
			return nil, domainerrors.ErrProductUnavailable.WithDetails("remove unavailable products from your cart")
		}
		if !product.CanSell(item.Quantity) {
			return nil, insufficientStock(product)
		}
		lines = append(lines, entity.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
	}

	return lines, nil
}

func newOrder(
	userID uuid.UUID,
	address string,
	lines []entity.OrderLine,
	totals entity.OrderTotals,
	discount *entity.Discount,
	now time.Time,
) *entity.Order {
	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		PlatformFee:     totals.Split.PlatformCommission,
		AdminRevenue:    totals.Split.AdminRevenue,
		DeliveryAddress: address,
		Status:          entity.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if discount != nil {
		order.DiscountCode = discount.Code
	}

	order.Items = make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:            uuid.New(),
			OrderID:       order.ID,
			ProductID:     line.ProductID,
			ProductName:   line.Name,
			Quantity:      line.Quantity,
			PriceSnapshot: line.UnitPrice,
			LineTotal:     line.Total(),
		})
	}

	return order
}

// redeemDiscount claims one use of the code. Both writes are guarded in the
// database so concurrent checkouts cannot exceed the cap or reuse a code.
func redeemDiscount(
	ctx context.Context,
	discountRepo repository.DiscountRepository,
	discount *entity.Discount,
	userID, orderID uuid.UUID,
	now time.Time,
) error {
	if err := discountRepo.IncrementUsage(ctx, discount.ID); err != nil {
		if errors.Is(err, repository.ErrDiscountUsageExhausted) {
			return domainerrors.ErrDiscountUsageLimitReached
		}

		return errors.Wrap(err, "failed to increment discount usage")
	}

	redemption := &entity.UserDiscount{
		ID:         uuid.New(),
		UserID:     userID,
		DiscountID: discount.ID,
		OrderID:    orderID,
		CreatedAt:  now,
	}
	if err := discountRepo.RecordRedemption(ctx, redemption); err != nil {
		if errors.Is(err, repository.ErrDiscountAlreadyRedeemed) {
			return domainerrors.ErrDiscountAlreadyUsed
		}

		return errors.Wrap(err, "failed to record discount redemption")
	}

	return nil
}

func findOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func orderEventData(order *entity.Order) map[string]any {
	return map[string]any{
		"order_id":   order.ID.String(),
		"status":     string(order.Status),
		"total":      order.Total.StringFixed(2),
		"item_count": len(order.Items),
	}
}

func platformConfig(cfg *config.Config) *config.PlatformConfig {
	if cfg == nil || cfg.Platform == nil {
		return &config.PlatformConfig{
			FeePercentage:            decimal.NewFromInt(5),
			RegularCustomerThreshold: decimal.NewFromInt(50000),
		}
	}

	return cfg.Platform
}
