package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated SQLite database. One connection keeps concurrent
// transactions serialized the way row locks would in PostgreSQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "storefront.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Ada", Role: entity.RoleClient}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, price string, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     "Chocolate cake " + uuid.NewString()[:4],
		Category: "cakes",
		Price:    dec(price),
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedOrder(t *testing.T, db *gorm.DB, user *entity.User, product *entity.Product, total string) *entity.Order {
	t.Helper()

	split := entity.SplitCommission(dec(total), dec("5"))
	order := &entity.Order{
		UserID:          user.ID,
		Subtotal:        dec(total),
		Total:           dec(total),
		PlatformFee:     split.PlatformCommission,
		AdminRevenue:    split.AdminRevenue,
		DeliveryAddress: "12 Allen Avenue, Ikeja",
		Status:          entity.OrderPending,
		Items: []*entity.OrderItem{{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      1,
			PriceSnapshot: dec(total),
			LineTotal:     dec(total),
		}},
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}
