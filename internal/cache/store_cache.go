package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// StoreCache is the read cache for storefront queries. Each logical query
// gets its own key; mutations invalidate exactly the keys they can affect,
// never the whole cache.
type StoreCache struct {
	redis *RedisClient
}

// TTLs per concern. Catalog data changes rarely; order-derived data is
// refreshed aggressively because admins watch it live.
const (
	catalogTTL  = 5 * time.Minute
	settingsTTL = time.Minute
	ordersTTL   = 30 * time.Second
	reportTTL   = time.Minute
)

// NewStoreCache creates a new StoreCache.
func NewStoreCache(redis *RedisClient) *StoreCache {
	return &StoreCache{redis: redis}
}

func (c *StoreCache) keyProducts(activeOnly bool) string {
	return fmt.Sprintf("catalog:products:%t", activeOnly)
}

func (c *StoreCache) keyProduct(id string) string {
	return "catalog:product:" + id
}

func (c *StoreCache) keyVariants(productID string, activeOnly bool) string {
	return fmt.Sprintf("catalog:variants:%s:%t", productID, activeOnly)
}

func (c *StoreCache) keySettings() string {
	return "settings:all"
}

func (c *StoreCache) keyOrderStats() string {
	return "orders:stats"
}

func (c *StoreCache) keyReportSummary(start, end string) string {
	return fmt.Sprintf("report:summary:%s:%s", start, end)
}

func (c *StoreCache) keyReportByVariant(start, end string) string {
	return fmt.Sprintf("report:by-variant:%s:%s", start, end)
}

// getJSON loads and unmarshals a cached value into dest. Returns false on a
// miss or any cache error; reads always fall through to the database.
func (c *StoreCache) getJSON(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if !IsMiss(err) {
			log.Debug().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache payload invalid")
		return false
	}
	return true
}

// setJSON marshals and stores a value. Cache write failures are logged and
// otherwise ignored; the response was already served from the database.
func (c *StoreCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, string(raw), ttl); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// GetProducts / SetProducts cache product list queries.
func (c *StoreCache) GetProducts(ctx context.Context, activeOnly bool, dest interface{}) bool {
	return c.getJSON(ctx, c.keyProducts(activeOnly), dest)
}

func (c *StoreCache) SetProducts(ctx context.Context, activeOnly bool, value interface{}) {
	c.setJSON(ctx, c.keyProducts(activeOnly), value, catalogTTL)
}

func (c *StoreCache) GetProduct(ctx context.Context, id string, dest interface{}) bool {
	return c.getJSON(ctx, c.keyProduct(id), dest)
}

func (c *StoreCache) SetProduct(ctx context.Context, id string, value interface{}) {
	c.setJSON(ctx, c.keyProduct(id), value, catalogTTL)
}

func (c *StoreCache) GetVariants(ctx context.Context, productID string, activeOnly bool, dest interface{}) bool {
	return c.getJSON(ctx, c.keyVariants(productID, activeOnly), dest)
}

func (c *StoreCache) SetVariants(ctx context.Context, productID string, activeOnly bool, value interface{}) {
	c.setJSON(ctx, c.keyVariants(productID, activeOnly), value, catalogTTL)
}

func (c *StoreCache) GetSettings(ctx context.Context, dest interface{}) bool {
	return c.getJSON(ctx, c.keySettings(), dest)
}

func (c *StoreCache) SetSettings(ctx context.Context, value interface{}) {
	c.setJSON(ctx, c.keySettings(), value, settingsTTL)
}

func (c *StoreCache) GetOrderStats(ctx context.Context, dest interface{}) bool {
	return c.getJSON(ctx, c.keyOrderStats(), dest)
}

func (c *StoreCache) SetOrderStats(ctx context.Context, value interface{}) {
	c.setJSON(ctx, c.keyOrderStats(), value, ordersTTL)
}

func (c *StoreCache) GetReportSummary(ctx context.Context, start, end string, dest interface{}) bool {
	return c.getJSON(ctx, c.keyReportSummary(start, end), dest)
}

func (c *StoreCache) SetReportSummary(ctx context.Context, start, end string, value interface{}) {
	c.setJSON(ctx, c.keyReportSummary(start, end), value, reportTTL)
}

func (c *StoreCache) GetReportByVariant(ctx context.Context, start, end string, dest interface{}) bool {
	return c.getJSON(ctx, c.keyReportByVariant(start, end), dest)
}

func (c *StoreCache) SetReportByVariant(ctx context.Context, start, end string, value interface{}) {
	c.setJSON(ctx, c.keyReportByVariant(start, end), value, reportTTL)
}

// InvalidateProduct drops the product list keys, the single-product key, and
// that product's variant lists after a product mutation.
func (c *StoreCache) InvalidateProduct(ctx context.Context, productID string) {
	keys := []string{
		c.keyProducts(true),
		c.keyProducts(false),
		c.keyVariants(productID, true),
		c.keyVariants(productID, false),
	}
	if productID != "" {
		keys = append(keys, c.keyProduct(productID))
	}
	if err := c.redis.Delete(ctx, keys...); err != nil {
		log.Debug().Err(err).Msg("product cache invalidation failed")
	}
}

// InvalidateVariants drops the variant lists of one product. Product list
// keys are dropped too because variant availability affects the order form.
func (c *StoreCache) InvalidateVariants(ctx context.Context, productID string) {
	err := c.redis.Delete(ctx,
		c.keyVariants(productID, true),
		c.keyVariants(productID, false),
		c.keyProducts(true),
		c.keyProducts(false),
	)
	if err != nil {
		log.Debug().Err(err).Msg("variant cache invalidation failed")
	}
}

// InvalidateSettings drops the settings key only.
func (c *StoreCache) InvalidateSettings(ctx context.Context) {
	if err := c.redis.Delete(ctx, c.keySettings()); err != nil {
		log.Debug().Err(err).Msg("settings cache invalidation failed")
	}
}

// InvalidateOrders drops order stats and every cached report range after an
// order mutation. Catalog and settings keys are left alone.
func (c *StoreCache) InvalidateOrders(ctx context.Context) {
	if err := c.redis.Delete(ctx, c.keyOrderStats()); err != nil {
		log.Debug().Err(err).Msg("order stats invalidation failed")
	}
	if err := c.redis.DeleteByPrefix(ctx, "report:"); err != nil {
		log.Debug().Err(err).Msg("report cache invalidation failed")
	}
}
