package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			SuperAdminEmails: []string{"owner@bakery.test"},
		},
		Platform: &config.PlatformConfig{
			FeePercentage:            decimal.NewFromInt(5),
			RegularCustomerThreshold: decimal.NewFromInt(50000),
			Currency:                 "NGN",
		},
		Paystack: &config.PaystackConfig{
			CallbackURL: "https://shop.test/checkout/callback",
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func clock() time.Time {
	return fixedNow
}

// expectTx makes the transaction manager run the callback once against a
// factory prepared by setup, returning whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func newProduct(name string, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "cakes",
		Price:    dec(price),
		Stock:    stock,
		IsActive: true,
	}
}

func newUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Email:      "ada@example.com",
		Name:       "Ada",
		Role:       role,
		TotalSpent: decimal.Zero,
	}
}

// decEq matches a decimal argument by value rather than by representation.
func decEq(s string) any {
	want := dec(s)

	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
