package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"sales-service/internal/analytics"
	"sales-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	lineItemsKey     = "analytics:line_items"
	customerCountKey = "analytics:customer_count"
)

// CachedAnalyticsRepository keeps the line-item set and customer count in
// redis for a short TTL. Analytics reads are allowed to lag writes, so a
// stale window is fine. Any redis failure logs and falls through to the
// real repository.
type CachedAnalyticsRepository struct {
	realRepo repository.AnalyticsRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedAnalyticsRepository(realRepo repository.AnalyticsRepository, rdb *redis.Client, ttl time.Duration) *CachedAnalyticsRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedAnalyticsRepository{
		realRepo: realRepo,
		redis:    rdb,
		ttl:      ttl,
	}
}

func (c *CachedAnalyticsRepository) LineItems(ctx context.Context) ([]analytics.LineItem, error) {
	data, err := c.redis.Get(ctx, lineItemsKey).Bytes()

	switch {
	case err == nil:
		var items []analytics.LineItem
		if err := json.Unmarshal(data, &items); err != nil {
			slog.Warn("failed to unmarshal cached line items, continuing with DB", "err", err)
			break
		}
		return items, nil

	case errors.Is(err, redis.Nil):

	default:
		slog.Warn("redis error, continuing with DB", "err", err)
	}

	items, err := c.realRepo.LineItems(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(items)
	if err != nil {
		slog.Warn("failed to marshal line items", "err", err)
		return items, nil
	}

	if err := c.redis.Set(ctx, lineItemsKey, jsonData, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache line items", "err", err)
	}

	return items, nil
}

func (c *CachedAnalyticsRepository) CountCustomers(ctx context.Context) (int, error) {
	data, err := c.redis.Get(ctx, customerCountKey).Result()

	switch {
	case err == nil:
		if count, convErr := strconv.Atoi(data); convErr == nil {
			return count, nil
		}
		slog.Warn("bad cached customer count, continuing with DB", "value", data)

	case errors.Is(err, redis.Nil):

	default:
		slog.Warn("redis error, continuing with DB", "err", err)
	}

	count, err := c.realRepo.CountCustomers(ctx)
	if err != nil {
		return 0, err
	}

	if err := c.redis.Set(ctx, customerCountKey, strconv.Itoa(count), c.ttl).Err(); err != nil {
		slog.Warn("failed to cache customer count", "err", err)
	}

	return count, nil
}

// Invalidate drops the cached analytics inputs. Called after writes that
// change orders or customers.
func (c *CachedAnalyticsRepository) Invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, lineItemsKey, customerCountKey).Err(); err != nil {
		slog.Warn("failed to invalidate analytics cache", "err", err)
	}
}
