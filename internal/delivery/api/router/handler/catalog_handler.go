package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog and its admin management.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	Category    string          `json:"category" validate:"required,max=60"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"imageUrl" validate:"omitempty,url"`
	IsActive    *bool           `json:"isActive"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		IsActive:    active,
	}
}

type StockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// ListProducts returns active products filtered by ?category= and ?search=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return h.listProducts(c, false)
}

// ListAllProducts is the admin listing including hidden products.
func (h *CatalogHandler) ListAllProducts(c echo.Context) error {
	return h.listProducts(c, true)
}

func (h *CatalogHandler) listProducts(c echo.Context, includeHidden bool) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.ProductFilter{
		Category:      c.QueryParam("category"),
		Search:        c.QueryParam("search"),
		IncludeHidden: includeHidden,
		Page:          page,
		PageSize:      pageSize,
	}
	result, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newProductResponses(result.Products), page, pageSize, result.Total)
}

// GetProduct returns one active product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id, false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// CreateProduct adds a product to the catalog.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct replaces the editable fields of a product.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// SetStock sets the absolute stock level of a product.
func (h *CatalogHandler) SetStock(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.SetStock(c.Request().Context(), id, *req.Stock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// DeactivateProduct hides a product from the storefront. Orders keep their snapshot.
func (h *CatalogHandler) DeactivateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
