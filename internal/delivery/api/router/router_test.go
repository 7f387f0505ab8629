package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clientToken     = "client-token"
	adminToken      = "admin-token"
	superAdminToken = "super-admin-token"
	cronSecret      = "cron-secret"
)

var (
	clientID     = uuid.MustParse("0b7e2f55-3f3c-4b8e-9a3b-6d2c1f0e9a11")
	adminID      = uuid.MustParse("1c8f3a66-4a4d-4c9f-8b4c-7e3d2a1f0b22")
	superAdminID = uuid.MustParse("2d9a4b77-5b5e-4daf-9c5d-8f4e3b2a1c33")
)

type apiFixtures struct {
	echo       *echo.Echo
	tokens     *mockSvc.MockTokenService
	auth       *mockUC.MockAuthUsecase
	users      *mockUC.MockUserUsecase
	catalog    *mockUC.MockCatalogUsecase
	cart       *mockUC.MockCartUsecase
	discounts  *mockUC.MockDiscountUsecase
	orders     *mockUC.MockOrderUsecase
	payments   *mockUC.MockPaymentUsecase
	settlement *mockUC.MockSettlementUsecase
	ads        *mockUC.MockAdUsecase
	stats      *mockUC.MockStatsUsecase
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &apiFixtures{
		tokens:     mockSvc.NewMockTokenService(t),
		auth:       mockUC.NewMockAuthUsecase(t),
		users:      mockUC.NewMockUserUsecase(t),
		catalog:    mockUC.NewMockCatalogUsecase(t),
		cart:       mockUC.NewMockCartUsecase(t),
		discounts:  mockUC.NewMockDiscountUsecase(t),
		orders:     mockUC.NewMockOrderUsecase(t),
		payments:   mockUC.NewMockPaymentUsecase(t),
		settlement: mockUC.NewMockSettlementUsecase(t),
		ads:        mockUC.NewMockAdUsecase(t),
		stats:      mockUC.NewMockStatsUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	cfg := &config.Config{Cron: &config.CronConfig{Secret: cronSecret}}
	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth, UserUC: fx.users, Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.users, Logger: logger}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: fx.catalog, Logger: logger}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cart, Logger: logger}),
		DiscountHandler: handler.NewDiscountHandler(handler.DiscountHandlerParams{DiscountUC: fx.discounts, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orders, PaymentUC: fx.payments, Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: fx.payments, SettlementUC: fx.settlement, Logger: logger}),
		AdHandler:       handler.NewAdHandler(handler.AdHandlerParams{AdUC: fx.ads, Logger: logger}),
		StatsHandler:    handler.NewStatsHandler(handler.StatsHandlerParams{StatsUC: fx.stats, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: fx.tokens, Config: cfg}),
	})
	r.RegisterRoutes(e)
	fx.echo = e

	fx.tokens.EXPECT().ValidateToken(clientToken).
		Return(&service.Claims{UserID: clientID, Role: entity.RoleClient, Type: service.TokenTypeAccess}, nil).Maybe()
	fx.tokens.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: adminID, Role: entity.RoleAdmin, Type: service.TokenTypeAccess}, nil).Maybe()
	fx.tokens.EXPECT().ValidateToken(superAdminToken).
		Return(&service.Claims{UserID: superAdminID, Role: entity.RoleSuperAdmin, Type: service.TokenTypeAccess}, nil).Maybe()

	return fx
}

func (fx *apiFixtures) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Page     int   `json:"page"`
			PageSize int   `json:"pageSize"`
			Total    int64 `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func placedOrder() *entity.Order {
	return &entity.Order{
		ID:              uuid.MustParse("5f0c8a31-7d2e-4e9b-9a51-2b7f3c9d1e00"),
		UserID:          clientID,
		Subtotal:        decimal.RequireFromString("30000"),
		Discount:        decimal.RequireFromString("3000"),
		DiscountCode:    "WELCOME10",
		Total:           decimal.RequireFromString("27000"),
		PlatformFee:     decimal.RequireFromString("1350"),
		AdminRevenue:    decimal.RequireFromString("25650"),
		DeliveryAddress: "12 Allen Avenue, Ikeja",
		Status:          entity.OrderPending,
	}
}

func TestRoutes_Health(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_PublicCatalogIsPaginated(t *testing.T) {
	fx := newAPIFixtures(t)
	products := []*entity.Product{{ID: uuid.New(), Name: "Sourdough", Price: decimal.RequireFromString("3500"), Stock: 3, IsActive: true}}

	fx.catalog.EXPECT().ListProducts(mock.Anything, entity.ProductFilter{Category: "bread", Page: 2, PageSize: 100}).
		Return(&service.ProductPage{Products: products, Total: 101}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/products?category=bread&page=2&pageSize=500", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(101), env.Meta.Pagination.Total)
	assert.Contains(t, string(env.Data), `"price":"3500.00"`)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRoutes_AccessControl(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{"missing token", http.MethodGet, "/api/v1/cart", "", http.StatusUnauthorized},
		{"unknown token", http.MethodGet, "/api/v1/me", "forged", http.StatusUnauthorized},
		{"client on admin route", http.MethodGet, "/api/v1/admin/orders", clientToken, http.StatusForbidden},
		{"admin on super admin route", http.MethodGet, "/api/v1/super-admin/users", adminToken, http.StatusForbidden},
		{"cron without secret", http.MethodGet, "/api/v1/cron/daily-stats", "", http.StatusUnauthorized},
		{"cron with a user token", http.MethodGet, "/api/v1/cron/daily-stats", superAdminToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid")).Maybe()

			rec := fx.do(tt.method, tt.path, tt.token, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRoutes_SuperAdminInheritsAdminRoutes(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.stats.EXPECT().Overview(mock.Anything).Return(&entity.PlatformStats{Day: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/admin/stats/overview", superAdminToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"day":"2026-03-14"`)
}

func TestRoutes_PlaceOrder(t *testing.T) {
	t.Run("created with money as strings", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.orders.EXPECT().PlaceOrder(mock.Anything, clientID, &usecase.PlaceOrderInput{
			DeliveryAddress: "12 Allen Avenue, Ikeja",
			DiscountCode:    "welcome10",
		}).Return(placedOrder(), nil)

		rec := fx.do(http.MethodPost, "/api/v1/orders", clientToken,
			`{"deliveryAddress":"12 Allen Avenue, Ikeja","discountCode":"welcome10"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var order handler.OrderResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &order))
		assert.Equal(t, "27000.00", order.Total)
		assert.Equal(t, "1350.00", order.PlatformFee)
		assert.Equal(t, "25650.00", order.AdminRevenue)
		assert.Equal(t, entity.OrderPending, order.Status)
	})

	t.Run("missing address is a validation error", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/api/v1/orders", clientToken, `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "deliveryAddress is required", env.Error.Details)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.orders.EXPECT().PlaceOrder(mock.Anything, clientID, mock.Anything).
			Return(nil, domainerrors.ErrInsufficientStock.WithDetails("Sourdough: 1 left"))

		rec := fx.do(http.MethodPost, "/api/v1/orders", clientToken, `{"deliveryAddress":"12 Allen Avenue"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
		assert.Equal(t, "Sourdough: 1 left", env.Error.Details)
	})
}

func TestRoutes_InitiatePayment(t *testing.T) {
	orderID := placedOrder().ID

	t.Run("returns checkout url and split", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.payments.EXPECT().InitiatePayment(mock.Anything, clientID, orderID).Return(&usecase.InitiatePaymentOutput{
			AuthorizationURL: "https://checkout.paystack.com/0peioxfhpn",
			Reference:        "ORD-1773482400000-5f0c8a31",
			Split:            entity.SplitCommission(decimal.RequireFromString("27000"), decimal.NewFromInt(5)),
		}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/payments", clientToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var out handler.InitiatePaymentResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, "ORD-1773482400000-5f0c8a31", out.Reference)
		assert.Equal(t, "1350.00", out.SplitInfo.PlatformCommission)
		assert.Equal(t, "25650.00", out.SplitInfo.AdminRevenue)
	})

	t.Run("someone else's order", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.payments.EXPECT().InitiatePayment(mock.Anything, clientID, orderID).Return(nil, domainerrors.ErrOrderOwnershipViolation)

		rec := fx.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/payments", clientToken, "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ORDER_OWNERSHIP_VIOLATION", decode(t, rec).Error.Code)
	})

	t.Run("provider message is passed through", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.payments.EXPECT().InitiatePayment(mock.Anything, clientID, orderID).
			Return(nil, domainerrors.ErrPaymentProviderRejected.WithDetails("Invalid subaccount"))

		rec := fx.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/payments", clientToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid subaccount", decode(t, rec).Error.Details)
	})

	t.Run("unexpected failures stay generic", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.payments.EXPECT().InitiatePayment(mock.Anything, clientID, orderID).
			Return(nil, errors.New("dial tcp 10.0.0.7:5432: connection refused"))

		rec := fx.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/payments", clientToken, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.7")
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	})
}

func TestRoutes_Webhook(t *testing.T) {
	body := `{"event":"charge.success","data":{"reference":"ORD-1773482400000-5f0c8a31","amount":2700000}}`

	t.Run("raw body and signature reach settlement", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.settlement.EXPECT().HandleWebhook(mock.Anything, []byte(body), "a1b2c3").Return(usecase.SettlementDuplicate, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("x-paystack-signature", "a1b2c3")
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"duplicate"}`, string(decode(t, rec).Data))
	})

	t.Run("unsigned delivery", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/api/v1/payments/webhook", "", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SIGNATURE", decode(t, rec).Error.Code)
	})
}

func TestRoutes_CronRecomputesRequestedDay(t *testing.T) {
	fx := newAPIFixtures(t)
	day := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	fx.stats.EXPECT().RecomputeDay(mock.Anything, day).Return(&entity.PlatformStats{
		Day:        day,
		TotalSales: decimal.RequireFromString("81000"),
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/cron/daily-stats?date=2026-03-13", cronSecret, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalSales":"81000.00"`)
}

func TestRoutes_AdImpressionAuthIsOptional(t *testing.T) {
	adID := uuid.New()
	ad := &entity.Ad{ID: adID, Title: "Easter hampers", ViewValue: decimal.RequireFromString("2.5"), Impressions: 1}

	t.Run("anonymous", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.ads.EXPECT().RecordImpression(mock.Anything, adID, (*uuid.UUID)(nil)).Return(ad, nil)

		rec := fx.do(http.MethodPost, "/api/v1/ads/"+adID.String()+"/impressions", "", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("signed in", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.ads.EXPECT().RecordImpression(mock.Anything, adID, mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil && *id == clientID
		})).Return(ad, nil)

		rec := fx.do(http.MethodPost, "/api/v1/ads/"+adID.String()+"/impressions", clientToken, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestRoutes_ChangeRole(t *testing.T) {
	targetID := uuid.New()

	t.Run("promotes a client", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.users.EXPECT().ChangeRole(mock.Anything, superAdminID, targetID, entity.RoleAdmin).
			Return(&entity.User{ID: targetID, Role: entity.RoleAdmin, TotalSpent: decimal.Zero}, nil)

		rec := fx.do(http.MethodPatch, "/api/v1/super-admin/users/"+targetID.String()+"/role", superAdminToken, `{"role":"admin"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"admin"`)
	})

	t.Run("super_admin cannot be granted through the API", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPatch, "/api/v1/super-admin/users/"+targetID.String()+"/role", superAdminToken, `{"role":"super_admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
