package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_DecrementStockNeverGoesNegative(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	product := seedProduct(t, db, "15000", 3)

	require.NoError(t, repo.DecrementStock(ctx, product.ID, 2))
	assert.ErrorIs(t, repo.DecrementStock(ctx, product.ID, 2), repository.ErrInsufficientStock)

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	require.NoError(t, repo.IncrementStock(ctx, product.ID, 4))
	got, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestProductRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	seedProduct(t, db, "1000", 5)
	hidden := seedProduct(t, db, "2000", 5)
	hidden.IsActive = false
	require.NoError(t, repo.Update(ctx, hidden))

	products, total, err := repo.List(ctx, entity.ProductFilter{Category: "cakes"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, products, 1)

	_, total, err = repo.List(ctx, entity.ProductFilter{IncludeHidden: true, Search: "CHOCOLATE"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCartRepository_AddQuantityUpserts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)
	user := seedUser(t, db, "cart@bakery.test")
	product := seedProduct(t, db, "15000", 10)

	qty, err := repo.AddQuantity(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = repo.AddQuantity(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, product.Name, items[0].Product.Name)

	require.NoError(t, repo.SetQuantity(ctx, user.ID, product.ID, 5))
	assert.ErrorIs(t, repo.Remove(ctx, user.ID, uuid.New()), repository.ErrCartItemNotFound)

	require.NoError(t, repo.Clear(ctx, user.ID))
	items, err = repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiscountRepository_UsageCapHoldsUnderConcurrency(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	maxUses := 2
	discount := &entity.Discount{
		Code:      "welcome10",
		Type:      entity.DiscountPercentage,
		Value:     dec("10"),
		MaxUses:   &maxUses,
		ValidFrom: time.Now().Add(-time.Hour),
		IsActive:  true,
	}
	require.NoError(t, NewDiscountRepository(db).Create(ctx, discount))
	assert.Equal(t, "WELCOME10", discount.Code)

	txManager := NewTransactionManager(db)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		exhausted int
	)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.NewDiscountRepository().IncrementUsage(ctx, discount.ID)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, repository.ErrDiscountUsageExhausted):
				exhausted++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, maxUses, succeeded)
	assert.Equal(t, 4, exhausted)

	stored, err := NewDiscountRepository(db).FindByCode(ctx, "Welcome10 ")
	require.NoError(t, err)
	assert.Equal(t, maxUses, stored.UsageCount)
}

func TestDiscountRepository_OneRedemptionPerUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDiscountRepository(db)
	user := seedUser(t, db, "redeem@bakery.test")
	discount := &entity.Discount{Code: "FLAT500", Type: entity.DiscountFixed, Value: dec("500"), IsActive: true}
	require.NoError(t, repo.Create(ctx, discount))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Discount{Code: "flat500", Type: entity.DiscountFixed}), repository.ErrDiscountCodeExists)

	used, err := repo.HasRedeemed(ctx, user.ID, discount.ID)
	require.NoError(t, err)
	assert.False(t, used)

	require.NoError(t, repo.RecordRedemption(ctx, &entity.UserDiscount{UserID: user.ID, DiscountID: discount.ID, CreatedAt: time.Now().UTC()}))
	assert.ErrorIs(t,
		repo.RecordRedemption(ctx, &entity.UserDiscount{UserID: user.ID, DiscountID: discount.ID, CreatedAt: time.Now().UTC()}),
		repository.ErrDiscountAlreadyRedeemed,
	)

	used, err = repo.HasRedeemed(ctx, user.ID, discount.ID)
	require.NoError(t, err)
	assert.True(t, used)
}

func TestDiscountRepository_ReleaseRedemptionReturnsTheUse(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDiscountRepository(db)
	user := seedUser(t, db, "cancel@bakery.test")
	maxUses := 1
	discount := &entity.Discount{Code: "ONCE", Type: entity.DiscountFixed, Value: dec("500"), MaxUses: &maxUses, IsActive: true}
	require.NoError(t, repo.Create(ctx, discount))
	orderID := uuid.New()

	require.NoError(t, repo.IncrementUsage(ctx, discount.ID))
	require.NoError(t, repo.RecordRedemption(ctx, &entity.UserDiscount{UserID: user.ID, DiscountID: discount.ID, OrderID: orderID, CreatedAt: time.Now().UTC()}))
	assert.ErrorIs(t, repo.IncrementUsage(ctx, discount.ID), repository.ErrDiscountUsageExhausted)

	require.NoError(t, repo.ReleaseRedemption(ctx, orderID))

	used, err := repo.HasRedeemed(ctx, user.ID, discount.ID)
	require.NoError(t, err)
	assert.False(t, used)
	stored, err := repo.FindByCode(ctx, "once")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UsageCount)

	// A second release and an order without a code change nothing.
	require.NoError(t, repo.ReleaseRedemption(ctx, orderID))
	require.NoError(t, repo.ReleaseRedemption(ctx, uuid.New()))
	stored, err = repo.FindByCode(ctx, "once")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UsageCount)

	require.NoError(t, repo.IncrementUsage(ctx, discount.ID))
	require.NoError(t, repo.RecordRedemption(ctx, &entity.UserDiscount{UserID: user.ID, DiscountID: discount.ID, OrderID: uuid.New(), CreatedAt: time.Now().UTC()}))
}

func TestDiscountRepository_CreateInactiveStaysInactive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDiscountRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Discount{Code: "PAUSED", Type: entity.DiscountFixed, Value: dec("1"), IsActive: false}))

	stored, err := repo.FindByCode(ctx, "paused")
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestPaymentRepository_CompareAndSetIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "payer@bakery.test")
	order := seedOrder(t, db, user, seedProduct(t, db, "27000", 1), "27000")
	repo := NewPaymentRepository(db)

	payment := entity.NewPendingPayment(order, "ORD-1-"+order.ID.String()[:8], entity.SplitCommission(order.Total, dec("5")), time.Now().UTC())
	require.NoError(t, repo.Create(ctx, payment))

	require.NoError(t, payment.Succeed("evt_1", time.Now().UTC()))
	changed, err := repo.CompareAndSetStatus(ctx, payment, entity.PaymentPending)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.CompareAndSetStatus(ctx, payment, entity.PaymentPending)
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := repo.FindByReference(ctx, payment.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, stored.Status)
	assert.True(t, dec("1350").Equal(stored.FeeCollected))
	assert.NotNil(t, stored.PaidAt)

	_, err = repo.FindByReference(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}

func TestUserRepository_AddTotalSpentPromotesOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	user := seedUser(t, db, "Loyal@Bakery.test")
	threshold := dec("50000")

	promoted, err := repo.AddTotalSpent(ctx, user.ID, dec("45000"), threshold)
	require.NoError(t, err)
	assert.False(t, promoted)

	promoted, err = repo.AddTotalSpent(ctx, user.ID, dec("10000"), threshold)
	require.NoError(t, err)
	assert.True(t, promoted)

	promoted, err = repo.AddTotalSpent(ctx, user.ID, dec("1"), threshold)
	require.NoError(t, err)
	assert.False(t, promoted)

	stored, err := repo.FindByEmail(ctx, "loyal@bakery.test")
	require.NoError(t, err)
	assert.True(t, stored.IsRegular)
	assert.True(t, dec("55001").Equal(stored.TotalSpent), stored.TotalSpent.String())

	_, err = repo.AddTotalSpent(ctx, uuid.New(), dec("1"), threshold)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "dup@bakery.test")

	err := NewUserRepository(db).Create(context.Background(), &entity.User{Email: "DUP@bakery.test"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_ListAndUpdateRole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	first := seedUser(t, db, "first@bakery.test")
	time.Sleep(5 * time.Millisecond)
	seedUser(t, db, "second@bakery.test")
	time.Sleep(5 * time.Millisecond)
	seedUser(t, db, "third@bakery.test")

	page, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "third@bakery.test", page[0].Email)

	page, total, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	require.NoError(t, repo.UpdateRole(ctx, first.ID, entity.RoleAdmin))
	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)

	assert.ErrorIs(t, repo.UpdateRole(ctx, uuid.New(), entity.RoleAdmin), repository.ErrUserNotFound)
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAuthRepository(db)
	user := seedUser(t, db, "auth@bakery.test")

	auth := &entity.Authentication{UserID: user.ID, Provider: "email", PasswordHash: "hash"}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindByUserID(ctx, user.ID, "email")
	require.NoError(t, err)
	assert.Equal(t, auth.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{UserID: user.ID, Provider: "email", PasswordHash: "other"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	_, err = repo.FindByUserID(ctx, user.ID, "google")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
}

func TestOrderRepository_CreateAndGuardedStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	user := seedUser(t, db, "orders@bakery.test")
	order := seedOrder(t, db, user, seedProduct(t, db, "5000", 4), "5000")

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.True(t, dec("5000").Equal(stored.Items[0].PriceSnapshot))
	assert.Equal(t, entity.OrderPending, stored.Status)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderPending, entity.OrderPaid))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, order.ID, entity.OrderPending, entity.OrderPaid), repository.ErrOrderStatusChanged)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.OrderPending, entity.OrderPaid), repository.ErrOrderNotFound)

	orders, total, err := repo.List(ctx, entity.OrderFilter{UserID: &user.ID, Status: entity.OrderPaid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)
}

func TestLedgerRepository_EventKeyIsUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db)
	user := seedUser(t, db, "ledger@bakery.test")
	order := seedOrder(t, db, user, seedProduct(t, db, "1000", 1), "1000")
	payment := entity.NewPendingPayment(order, "ORD-2-abc", entity.SplitCommission(dec("1000"), dec("5")), time.Now().UTC())

	now := time.Now().UTC()
	require.NoError(t, repo.Append(ctx, entity.SettlementLedgerEntries(payment, now)...))
	assert.ErrorIs(t, repo.Append(ctx, entity.SettlementLedgerEntries(payment, now)...), repository.ErrLedgerEntryExists)

	start, end := entity.DayWindow(now)
	sales, err := repo.SumByKind(ctx, entity.LedgerSale, start, end)
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(sales), sales.String())

	commission, err := repo.SumByKind(ctx, entity.LedgerCommission, start, end)
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(commission), commission.String())

	empty, err := repo.SumByKind(ctx, entity.LedgerSale, start.AddDate(0, 0, -7), start.AddDate(0, 0, -6))
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestStatsRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewStatsRepository(db)
	day, _ := entity.DayWindow(time.Now())

	row := &entity.PlatformStats{Day: day, TotalSales: dec("100"), TotalCommission: dec("5"), UpdatedAt: time.Now().UTC()}
	require.NoError(t, repo.Upsert(ctx, row))
	row.TotalSales = dec("200")
	require.NoError(t, repo.Upsert(ctx, row))

	rows, err := repo.ListBetween(ctx, day, day)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, dec("200").Equal(rows[0].TotalSales))
}

func TestStatsRepository_CountActivity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "active@bakery.test")
	seedUser(t, db, "idle@bakery.test")
	seedOrder(t, db, user, seedProduct(t, db, "1000", 1), "1000")

	ad := &entity.Ad{Title: "Easter bundle", ViewValue: dec("2.5"), IsActive: true}
	adRepo := NewAdRepository(db)
	require.NoError(t, adRepo.Create(ctx, ad))
	for i := 0; i < 2; i++ {
		require.NoError(t, adRepo.CreateImpression(ctx, &entity.AdImpression{AdID: ad.ID, Value: ad.ViewValue, CreatedAt: time.Now().UTC()}))
	}

	start, end := entity.DayWindow(time.Now())
	counts, err := NewStatsRepository(db).CountActivity(ctx, start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.NewUsers)
	assert.Equal(t, int64(1), counts.OrderCount)
	assert.Equal(t, int64(1), counts.ActiveUsers)
	assert.Equal(t, int64(0), counts.PaidOrderCount)
	assert.Equal(t, int64(2), counts.AdImpressions)
	assert.True(t, dec("5").Equal(counts.AdRevenue), counts.AdRevenue.String())
}

func TestAdRepository_RecordViewOnlyActive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAdRepository(db)
	ad := &entity.Ad{Title: "Cupcake week", ViewValue: dec("1.25"), IsActive: true}
	require.NoError(t, repo.Create(ctx, ad))

	updated, err := repo.RecordView(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Impressions)
	assert.True(t, dec("1.25").Equal(updated.TotalRevenue))

	require.NoError(t, repo.Deactivate(ctx, ad.ID))
	_, err = repo.RecordView(ctx, ad.ID)
	assert.ErrorIs(t, err, repository.ErrAdNotFound)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	product := seedProduct(t, db, "1000", 5)
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProductRepository().DecrementStock(ctx, product.ID, 5); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
}
