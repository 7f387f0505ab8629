// Package cache holds the Redis-backed catalog listing cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	listKeyPrefix   = "catalog:products:v"
	versionKey      = "catalog:products:version"
	defaultCacheTTL = 5 * time.Minute
)

// redisCatalogCache keys listings by a version counter; Invalidate bumps the
// counter so stale pages simply expire.
type redisCatalogCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// Params holds dependencies for the catalog cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache returns a Redis cache, or a no-op cache when no URL is configured.
func NewCatalogCache(params Params) (service.CatalogCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return noopCatalogCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis degrades to cache misses rather than failing startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, catalog cache will miss", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisCatalogCache(client, cfg.CacheTTL, params.Logger), nil
}

func newRedisCatalogCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *redisCatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &redisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCatalogCache) GetProductPage(ctx context.Context, filter entity.ProductFilter) (*service.ProductPage, bool) {
	version, err := c.version(ctx)
	if err != nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, listKey(version, filter)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Catalog cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	var page service.ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		c.logger.WarnContext(ctx, "Failed to unmarshal cached product page", slog.Any("error", err))

		return nil, false
	}

	return &page, true
}

func (c *redisCatalogCache) SetProductPage(ctx context.Context, filter entity.ProductFilter, page *service.ProductPage) {
	version, err := c.version(ctx)
	if err != nil {
		return
	}

	raw, err := json.Marshal(page)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to marshal product page for cache", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, listKey(version, filter), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache product page", slog.Any("error", err))
	}
}

func (c *redisCatalogCache) Invalidate(ctx context.Context) {
	version, err := c.client.Incr(ctx, versionKey).Result()
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to invalidate catalog cache", slog.Any("error", err))

		return
	}

	c.logger.DebugContext(ctx, "Catalog cache invalidated", slog.Int64("version", version))
}

// version returns the current listing version; a missing key reads as 0.
func (c *redisCatalogCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		c.logger.WarnContext(ctx, "Catalog cache version read failed", slog.Any("error", err))

		return 0, err
	}

	return version, nil
}

func listKey(version int64, filter entity.ProductFilter) string {
	filter.Normalize()

	return fmt.Sprintf("%s%d:c=%s:q=%s:h=%t:p=%d:s=%d",
		listKeyPrefix,
		version,
		url.QueryEscape(strings.ToLower(filter.Category)),
		url.QueryEscape(strings.ToLower(strings.TrimSpace(filter.Search))),
		filter.IncludeHidden,
		filter.Page,
		filter.PageSize,
	)
}

type noopCatalogCache struct{}

func (noopCatalogCache) GetProductPage(context.Context, entity.ProductFilter) (*service.ProductPage, bool) {
	return nil, false
}

func (noopCatalogCache) SetProductPage(context.Context, entity.ProductFilter, *service.ProductPage) {}

func (noopCatalogCache) Invalidate(context.Context) {}
