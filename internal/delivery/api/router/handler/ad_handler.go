package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdHandlerParams holds dependencies for AdHandler, injected by Fx.
type AdHandlerParams struct {
	fx.In

	AdUC   usecase.AdUsecase
	Logger *slog.Logger
}

// AdHandler serves storefront banners and their administration.
type AdHandler struct {
	adUC   usecase.AdUsecase
	logger *slog.Logger
}

// NewAdHandler is the constructor for AdHandler.
func NewAdHandler(params AdHandlerParams) *AdHandler {
	return &AdHandler{
		adUC:   params.AdUC,
		logger: params.Logger,
	}
}

type CreateAdRequest struct {
	Title     string          `json:"title" validate:"required,max=120"`
	ImageURL  string          `json:"imageUrl" validate:"required,url"`
	TargetURL string          `json:"targetUrl" validate:"omitempty,url"`
	ViewValue decimal.Decimal `json:"viewValue" validate:"gte=0"`
}

// ListActive returns the ads shown on the storefront.
func (h *AdHandler) ListActive(c echo.Context) error {
	return h.list(c, true)
}

// ListAll is the admin listing including inactive ads.
func (h *AdHandler) ListAll(c echo.Context) error {
	return h.list(c, false)
}

func (h *AdHandler) list(c echo.Context, activeOnly bool) error {
	ads, err := h.adUC.ListAds(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*AdResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, newAdResponse(ad))
	}

	return response.Success(c, http.StatusOK, out)
}

// RecordImpression counts one view of an ad. Anonymous visitors are counted too.
func (h *AdHandler) RecordImpression(c echo.Context) error {
	adID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ad, err := h.adUC.RecordImpression(c.Request().Context(), adID, middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAdResponse(ad))
}

// Create adds an active ad.
func (h *AdHandler) Create(c echo.Context) error {
	var req CreateAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ad, err := h.adUC.CreateAd(c.Request().Context(), &usecase.CreateAdInput{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		ViewValue: req.ViewValue,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAdResponse(ad))
}

// Deactivate stops showing an ad.
func (h *AdHandler) Deactivate(c echo.Context) error {
	adID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adUC.DeactivateAd(c.Request().Context(), adID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
