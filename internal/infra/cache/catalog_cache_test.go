package cache

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUnreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: "localhost:0",
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return nil, errors.New("redis disabled in tests")
		},
		MaxRetries: -1,
	})
}

func TestListKey_NormalizesFilter(t *testing.T) {
	a := listKey(3, entity.ProductFilter{Category: "Cakes", Search: " Chocolate "})
	b := listKey(3, entity.ProductFilter{Category: "cakes", Search: "chocolate", Page: 1, PageSize: 20})
	assert.Equal(t, a, b)
	assert.Equal(t, "catalog:products:v3:c=cakes:q=chocolate:h=false:p=1:s=20", a)

	assert.NotEqual(t, a, listKey(4, entity.ProductFilter{Category: "cakes", Search: "chocolate"}))
	assert.NotEqual(t, a, listKey(3, entity.ProductFilter{Category: "cakes", Search: "chocolate", Page: 2}))
	assert.Contains(t, listKey(1, entity.ProductFilter{Search: "a:b"}), "q=a%3Ab")
}

func TestRedisCatalogCache_UnreachableRedisMisses(t *testing.T) {
	client := newUnreachableClient()
	defer client.Close()

	c := newRedisCatalogCache(client, 0, discardLogger())
	assert.Equal(t, defaultCacheTTL, c.ttl)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := entity.ProductFilter{Category: "bread"}
	c.SetProductPage(ctx, filter, &service.ProductPage{Total: 1})
	page, ok := c.GetProductPage(ctx, filter)
	assert.False(t, ok)
	assert.Nil(t, page)

	assert.NotPanics(t, func() { c.Invalidate(ctx) })
}

func TestNewCatalogCache_NoURLIsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := NewCatalogCache(Params{Lc: lc, Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, noopCatalogCache{}, c)

	_, ok := c.GetProductPage(context.Background(), entity.ProductFilter{})
	assert.False(t, ok)
}

func TestNewCatalogCache_InvalidURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewCatalogCache(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{URL: "http://not-redis"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}
