package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxWebhookBody bounds the provider payload read into memory.
const maxWebhookBody = 1 << 20

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC    usecase.PaymentUsecase
	SettlementUC usecase.SettlementUsecase
	Logger       *slog.Logger
}

// PaymentHandler serves payment status polling and the provider webhook.
type PaymentHandler struct {
	paymentUC    usecase.PaymentUsecase
	settlementUC usecase.SettlementUsecase
	logger       *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:    params.PaymentUC,
		settlementUC: params.SettlementUC,
		logger:       params.Logger,
	}
}

// GetPayment returns a payment attempt by reference.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), actor, c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponse(payment))
}

// Webhook receives provider events. The signature is computed over the raw body,
// so the body is read as bytes and never rebound.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidWebhookPayload.WithDetails("unreadable body"))
	}

	signature := c.Request().Header.Get(constants.PaystackSignatureHeader)
	if signature == "" {
		return response.HandleAppError(c, domainerrors.ErrInvalidWebhookSignature)
	}

	outcome, err := h.settlementUC.HandleWebhook(c.Request().Context(), body, signature)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": string(outcome)})
}
