// Package router registers the storefront API routes.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	DiscountHandler *handler.DiscountHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	AdHandler       *handler.AdHandler
	StatsHandler    *handler.StatsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	users    *handler.UserHandler
	catalog  *handler.CatalogHandler
	cart     *handler.CartHandler
	discount *handler.DiscountHandler
	orders   *handler.OrderHandler
	payments *handler.PaymentHandler
	ads      *handler.AdHandler
	stats    *handler.StatsHandler
	authMW   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:     params.AuthHandler,
		users:    params.UserHandler,
		catalog:  params.CatalogHandler,
		cart:     params.CartHandler,
		discount: params.DiscountHandler,
		orders:   params.OrderHandler,
		payments: params.PaymentHandler,
		ads:      params.AdHandler,
		stats:    params.StatsHandler,
		authMW:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh", r.auth.Refresh)
	}

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.GET("/products", r.catalog.ListProducts)
	apiV1.GET("/products/:id", r.catalog.GetProduct)
	apiV1.GET("/ads", r.ads.ListActive)
	apiV1.POST("/ads/:id/impressions", r.ads.RecordImpression, r.authMW.OptionalAuthenticate)
	apiV1.POST("/payments/webhook", r.payments.Webhook)
	apiV1.GET("/cron/daily-stats", r.stats.RunDaily, r.authMW.RequireCronSecret)

	// Customer routes
	customer := apiV1.Group("", r.authMW.Authenticate)
	{
		customer.GET("/me", r.auth.Me)

		customer.GET("/cart", r.cart.GetCart)
		customer.POST("/cart", r.cart.AddItem)
		customer.DELETE("/cart", r.cart.Clear)
		customer.PUT("/cart/items/:productId", r.cart.UpdateItem)
		customer.DELETE("/cart/items/:productId", r.cart.RemoveItem)

		customer.POST("/discounts/apply", r.discount.Apply)

		customer.POST("/orders", r.orders.PlaceOrder)
		customer.GET("/orders", r.orders.ListMyOrders)
		customer.GET("/orders/:id", r.orders.GetOrder)
		customer.GET("/orders/:id/qr", r.orders.PickupQR)
		customer.POST("/orders/:id/payments", r.orders.InitiatePayment)

		customer.GET("/payments/:reference", r.payments.GetPayment)
	}

	// Bakery admin routes
	admin := apiV1.Group("/admin", r.authMW.Authenticate, r.authMW.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/products", r.catalog.ListAllProducts)
		admin.POST("/products", r.catalog.CreateProduct)
		admin.PUT("/products/:id", r.catalog.UpdateProduct)
		admin.PATCH("/products/:id/stock", r.catalog.SetStock)
		admin.DELETE("/products/:id", r.catalog.DeactivateProduct)

		admin.GET("/orders", r.orders.ListOrders)
		admin.PATCH("/orders/:id/status", r.orders.UpdateStatus)
		admin.POST("/orders/pickup", r.orders.RedeemPickup)

		admin.POST("/discounts", r.discount.Create)
		admin.GET("/discounts", r.discount.List)
		admin.GET("/discounts/:code", r.discount.Get)
		admin.PATCH("/discounts/:code", r.discount.Update)
		admin.DELETE("/discounts/:code", r.discount.Deactivate)

		admin.POST("/ads", r.ads.Create)
		admin.GET("/ads", r.ads.ListAll)
		admin.DELETE("/ads/:id", r.ads.Deactivate)

		admin.GET("/stats/overview", r.stats.Overview)
	}

	// Platform owner routes
	superAdmin := apiV1.Group("/super-admin", r.authMW.Authenticate, r.authMW.RequireRole(entity.RoleSuperAdmin))
	{
		superAdmin.GET("/users", r.users.ListUsers)
		superAdmin.PATCH("/users/:id/role", r.users.ChangeRole)
		superAdmin.GET("/stats", r.stats.List)
	}
}
