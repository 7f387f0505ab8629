package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// OrderHandler serves checkout, order reads, fulfilment and payment initiation.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"deliveryAddress" validate:"required,max=500"`
	DiscountCode    string `json:"discountCode" validate:"max=64"`
}

type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

type RedeemPickupRequest struct {
	Code string `json:"code" validate:"required,max=2048"`
}

// PlaceOrder checks out the caller's cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		DiscountCode:    req.DiscountCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// ListMyOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	page, pageSize, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newOrderResponses(result.Orders), result.Page, result.PageSize, result.Total)
}

// GetOrder returns one order the caller may see.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// PickupQR returns the order's pickup code as a PNG image.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.PickupQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// InitiatePayment starts a split payment for a pending order.
func (h *OrderHandler) InitiatePayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.paymentUC.InitiatePayment(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &InitiatePaymentResponse{
		AuthorizationURL: out.AuthorizationURL,
		AccessCode:       out.AccessCode,
		Reference:        out.Reference,
		SplitInfo: &SplitInfoResponse{
			Total:              money(out.Split.Total),
			PlatformCommission: money(out.Split.PlatformCommission),
			AdminRevenue:       money(out.Split.AdminRevenue),
		},
	})
}

// ListOrders is the admin listing, optionally filtered by ?status=.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.OrderFilter{Page: page, PageSize: pageSize}
	if raw := c.QueryParam("status"); raw != "" {
		filter.Status = entity.OrderStatus(raw)
		if !filter.Status.IsValid() {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown order status"))
		}
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newOrderResponses(result.Orders), result.Page, result.PageSize, result.Total)
}

// UpdateStatus moves an order along its fulfilment flow.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// RedeemPickup marks the order encoded in a scanned pickup code as delivered.
func (h *OrderHandler) RedeemPickup(c echo.Context) error {
	var req RedeemPickupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.RedeemPickup(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
