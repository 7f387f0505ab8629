package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler serves code previews and discount administration.
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler.
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

type ApplyDiscountRequest struct {
	Code     string          `json:"code" validate:"required,max=64"`
	Subtotal decimal.Decimal `json:"subtotal" validate:"gte=0"`
}

type CreateDiscountRequest struct {
	Code        string              `json:"code" validate:"required,max=64"`
	Type        entity.DiscountType `json:"type" validate:"required,oneof=PERCENTAGE FIXED"`
	Value       decimal.Decimal     `json:"value" validate:"gt=0"`
	MinPurchase decimal.Decimal     `json:"minPurchase" validate:"gte=0"`
	MaxUses     *int                `json:"maxUses" validate:"omitempty,gt=0"`
	ValidFrom   *time.Time          `json:"validFrom"`
	ValidTo     *time.Time          `json:"validTo"`
}

type UpdateDiscountRequest struct {
	Value       *decimal.Decimal `json:"value"`
	MinPurchase *decimal.Decimal `json:"minPurchase"`
	MaxUses     *int             `json:"maxUses" validate:"omitempty,gt=0"`
	Unlimited   bool             `json:"unlimited"`
	ValidFrom   *time.Time       `json:"validFrom"`
	ValidTo     *time.Time       `json:"validTo"`
	IsActive    *bool            `json:"isActive"`
}

// Apply previews a code against a subtotal for the caller. Nothing is redeemed.
func (h *DiscountHandler) Apply(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req ApplyDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.discountUC.ApplyDiscount(c.Request().Context(), userID, req.Code, req.Subtotal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DiscountQuoteResponse{
		Code:     quote.Code,
		Type:     quote.Type,
		Value:    quote.Value.String(),
		Discount: money(quote.Discount),
	})
}

// Create registers a new code.
func (h *DiscountHandler) Create(c echo.Context) error {
	var req CreateDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.CreateDiscount(c.Request().Context(), &usecase.CreateDiscountInput{
		Code:        req.Code,
		Type:        req.Type,
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxUses:     req.MaxUses,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDiscountResponse(discount))
}

// List returns every code.
func (h *DiscountHandler) List(c echo.Context) error {
	discounts, err := h.discountUC.ListDiscounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, newDiscountResponse(d))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get returns one code.
func (h *DiscountHandler) Get(c echo.Context) error {
	discount, err := h.discountUC.GetDiscount(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDiscountResponse(discount))
}

// Update changes the window, cap, threshold or active flag of a code.
func (h *DiscountHandler) Update(c echo.Context) error {
	var req UpdateDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.UpdateDiscount(c.Request().Context(), c.Param("code"), &usecase.UpdateDiscountInput{
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		MaxUses:     req.MaxUses,
		ClearMaxUse: req.Unlimited,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDiscountResponse(discount))
}

// Deactivate switches a code off. Past redemptions are kept.
func (h *DiscountHandler) Deactivate(c echo.Context) error {
	if err := h.discountUC.DeactivateDiscount(c.Request().Context(), c.Param("code")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
