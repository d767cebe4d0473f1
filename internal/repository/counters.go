package repository

import (
	"context"
	"sync/atomic"

	"github.com/go-redis/redis/v8"
)

// Counters is the persistent scalar counter store: site views, share count,
// and cumulative revenue. Revenue is kept in integer cents so additions stay
// exact.
type Counters interface {
	SiteViews(ctx context.Context) (int64, error)
	IncrementSiteViews(ctx context.Context) (int64, error)
	ShareCount(ctx context.Context) (int64, error)
	IncrementShareCount(ctx context.Context) (int64, error)
	RevenueCents(ctx context.Context) (int64, error)
	AddRevenueCents(ctx context.Context, cents int64) (int64, error)
}

const (
	siteViewsKey  = "counters:site_views"
	shareCountKey = "counters:share_count"
	revenueKey    = "counters:revenue_cents"
)

// RedisCounters backs the counter store with atomic Redis increments, so
// concurrent requests cannot lose updates the way a read-then-write cycle
// could.
type RedisCounters struct {
	rdb *redis.Client
}

func NewRedisCounters(rdb *redis.Client) *RedisCounters {
	return &RedisCounters{rdb: rdb}
}

func (c *RedisCounters) get(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (c *RedisCounters) SiteViews(ctx context.Context) (int64, error) {
	return c.get(ctx, siteViewsKey)
}

func (c *RedisCounters) IncrementSiteViews(ctx context.Context) (int64, error) {
	return c.rdb.Incr(ctx, siteViewsKey).Result()
}

func (c *RedisCounters) ShareCount(ctx context.Context) (int64, error) {
	return c.get(ctx, shareCountKey)
}

func (c *RedisCounters) IncrementShareCount(ctx context.Context) (int64, error) {
	return c.rdb.Incr(ctx, shareCountKey).Result()
}

func (c *RedisCounters) RevenueCents(ctx context.Context) (int64, error) {
	return c.get(ctx, revenueKey)
}

func (c *RedisCounters) AddRevenueCents(ctx context.Context, cents int64) (int64, error) {
	return c.rdb.IncrBy(ctx, revenueKey, cents).Result()
}

// MemoryCounters is the in-process implementation used by tests.
type MemoryCounters struct {
	siteViews  atomic.Int64
	shareCount atomic.Int64
	revenue    atomic.Int64
}

func NewMemoryCounters() *MemoryCounters {
	return &MemoryCounters{}
}

func (c *MemoryCounters) SiteViews(ctx context.Context) (int64, error) {
	return c.siteViews.Load(), nil
}

func (c *MemoryCounters) IncrementSiteViews(ctx context.Context) (int64, error) {
	return c.siteViews.Add(1), nil
}

func (c *MemoryCounters) ShareCount(ctx context.Context) (int64, error) {
	return c.shareCount.Load(), nil
}

func (c *MemoryCounters) IncrementShareCount(ctx context.Context) (int64, error) {
	return c.shareCount.Add(1), nil
}

func (c *MemoryCounters) RevenueCents(ctx context.Context) (int64, error) {
	return c.revenue.Load(), nil
}

func (c *MemoryCounters) AddRevenueCents(ctx context.Context, cents int64) (int64, error) {
	return c.revenue.Add(cents), nil
}
