package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yeremiapane/table-order-service/models"
	"github.com/yeremiapane/table-order-service/utils"
)

// CachedCatalog serves catalog reads from Redis and falls back to the
// database on a miss. The catalog is read-only here, so entries simply
// expire after ttl. A nil client disables caching.
type CachedCatalog struct {
	next   *CatalogRepository
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewCachedCatalog(next *CatalogRepository, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedCatalog{next: next, rdb: rdb, ttl: ttl, prefix: "catalog"}
}

func (c *CachedCatalog) ListItems(ctx context.Context) ([]models.Item, error) {
	if c.rdb == nil {
		return c.next.ListItems(ctx)
	}

	key := c.prefix + ":items"
	var items []models.Item
	if c.load(ctx, key, &items) {
		return items, nil
	}

	items, err := c.next.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

// GetItem caches found items only; misses always go to the database.
func (c *CachedCatalog) GetItem(ctx context.Context, id uint) (models.Item, bool, error) {
	if c.rdb == nil {
		return c.next.GetItem(ctx, id)
	}

	key := fmt.Sprintf("%s:item:%d", c.prefix, id)
	var item models.Item
	if c.load(ctx, key, &item) {
		return item, true, nil
	}

	item, found, err := c.next.GetItem(ctx, id)
	if err != nil || !found {
		return item, found, err
	}
	c.store(ctx, key, item)
	return item, true, nil
}

func (c *CachedCatalog) load(ctx context.Context, key string, dst interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.InfoLogger.Warnf("catalog cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		utils.InfoLogger.Warnf("catalog cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		utils.InfoLogger.Warnf("catalog cache set %s: %v", key, err)
	}
}
