package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-place decimal string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone,omitempty"`
	Role       entity.Role `json:"role"`
	TotalSpent string      `json:"totalSpent"`
	IsRegular  bool        `json:"isRegular"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		Role:       u.Role,
		TotalSpent: money(u.TotalSpent),
		IsRegular:  u.IsRegular,
		CreatedAt:  u.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	TokenType    string        `json:"tokenType"`
	ExpiresIn    int64         `json:"expiresIn"`
	User         *UserResponse `json:"user"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    out.ExpiresIn,
		User:         newUserResponse(out.User),
	}
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       money(p.Price),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}

	return out
}

type CartItemResponse struct {
	ProductID uuid.UUID        `json:"productId"`
	Quantity  int              `json:"quantity"`
	LineTotal string           `json:"lineTotal"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type CartResponse struct {
	Items    []*CartItemResponse `json:"items"`
	Subtotal string              `json:"subtotal"`
}

func newCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]*CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			LineTotal: money(item.LineTotal()),
			Product:   newProductResponse(item.Product),
		})
	}

	return &CartResponse{Items: items, Subtotal: money(cart.Subtotal)}
}

type DiscountResponse struct {
	ID          uuid.UUID           `json:"id"`
	Code        string              `json:"code"`
	Type        entity.DiscountType `json:"type"`
	Value       string              `json:"value"`
	MinPurchase string              `json:"minPurchase"`
	MaxUses     *int                `json:"maxUses"`
	UsageCount  int                 `json:"usageCount"`
	ValidFrom   time.Time           `json:"validFrom"`
	ValidTo     *time.Time          `json:"validTo"`
	IsActive    bool                `json:"isActive"`
}

func newDiscountResponse(d *entity.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:          d.ID,
		Code:        d.Code,
		Type:        d.Type,
		Value:       d.Value.String(),
		MinPurchase: money(d.MinPurchase),
		MaxUses:     d.MaxUses,
		UsageCount:  d.UsageCount,
		ValidFrom:   d.ValidFrom,
		ValidTo:     d.ValidTo,
		IsActive:    d.IsActive,
	}
}

type DiscountQuoteResponse struct {
	Code     string              `json:"code"`
	Type     entity.DiscountType `json:"type"`
	Value    string              `json:"value"`
	Discount string              `json:"discount"`
}

type OrderItemResponse struct {
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	PriceSnapshot string    `json:"priceSnapshot"`
	LineTotal     string    `json:"lineTotal"`
}

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"userId"`
	Status          entity.OrderStatus   `json:"status"`
	Subtotal        string               `json:"subtotal"`
	Discount        string               `json:"discount"`
	DiscountCode    string               `json:"discountCode,omitempty"`
	Shipping        string               `json:"shipping"`
	Total           string               `json:"total"`
	PlatformFee     string               `json:"platformFee"`
	AdminRevenue    string               `json:"adminRevenue"`
	DeliveryAddress string               `json:"deliveryAddress"`
	Items           []*OrderItemResponse `json:"items"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func newOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, &OrderItemResponse{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PriceSnapshot: money(item.PriceSnapshot),
			LineTotal:     money(item.LineTotal),
		})
	}

	return &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		Subtotal:        money(o.Subtotal),
		Discount:        money(o.Discount),
		DiscountCode:    o.DiscountCode,
		Shipping:        money(o.Shipping),
		Total:           money(o.Total),
		PlatformFee:     money(o.PlatformFee),
		AdminRevenue:    money(o.AdminRevenue),
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}

	return out
}

type SplitInfoResponse struct {
	Total              string `json:"total"`
	PlatformCommission string `json:"platformCommission"`
	AdminRevenue       string `json:"adminRevenue"`
}

type InitiatePaymentResponse struct {
	AuthorizationURL string             `json:"authorizationUrl"`
	AccessCode       string             `json:"accessCode,omitempty"`
	Reference        string             `json:"reference"`
	SplitInfo        *SplitInfoResponse `json:"splitInfo"`
}

type PaymentResponse struct {
	ID           uuid.UUID            `json:"id"`
	OrderID      uuid.UUID            `json:"orderId"`
	Reference    string               `json:"reference"`
	Amount       string               `json:"amount"`
	FeeCollected string               `json:"feeCollected"`
	AdminEarning string               `json:"adminEarning"`
	Status       entity.PaymentStatus `json:"status"`
	PaidAt       *time.Time           `json:"paidAt"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func newPaymentResponse(p *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Reference:    p.Reference,
		Amount:       money(p.Amount),
		FeeCollected: money(p.FeeCollected),
		AdminEarning: money(p.AdminEarning),
		Status:       p.Status,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
}

type AdResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	TargetURL    string    `json:"targetUrl,omitempty"`
	ViewValue    string    `json:"viewValue"`
	Impressions  int64     `json:"impressions"`
	TotalRevenue string    `json:"totalRevenue"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newAdResponse(ad *entity.Ad) *AdResponse {
	return &AdResponse{
		ID:           ad.ID,
		Title:        ad.Title,
		ImageURL:     ad.ImageURL,
		TargetURL:    ad.TargetURL,
		ViewValue:    ad.ViewValue.String(),
		Impressions:  ad.Impressions,
		TotalRevenue: money(ad.TotalRevenue),
		IsActive:     ad.IsActive,
		CreatedAt:    ad.CreatedAt,
	}
}

type StatsResponse struct {
	Day             string `json:"day"`
	TotalSales      string `json:"totalSales"`
	TotalCommission string `json:"totalCommission"`
	AdRevenue       string `json:"adRevenue"`
	AdImpressions   int64  `json:"adImpressions"`
	ActiveUsers     int64  `json:"activeUsers"`
	NewUsers        int64  `json:"newUsers"`
	OrderCount      int64  `json:"orderCount"`
	PaidOrderCount  int64  `json:"paidOrderCount"`
}

func newStatsResponse(s *entity.PlatformStats) *StatsResponse {
	return &StatsResponse{
		Day:             s.Day.Format(time.DateOnly),
		TotalSales:      money(s.TotalSales),
		TotalCommission: money(s.TotalCommission),
		AdRevenue:       money(s.AdRevenue),
		AdImpressions:   s.AdImpressions,
		ActiveUsers:     s.ActiveUsers,
		NewUsers:        s.NewUsers,
		OrderCount:      s.OrderCount,
		PaidOrderCount:  s.PaidOrderCount,
	}
}
