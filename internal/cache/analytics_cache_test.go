package cache

import (
	"context"
	"testing"
	"time"

	"sales-service/internal/analytics"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsRepo struct {
	items      []analytics.LineItem
	count      int
	itemCalls  int
	countCalls int
}

func (s *stubAnalyticsRepo) LineItems(context.Context) ([]analytics.LineItem, error) {
	s.itemCalls++
	return s.items, nil
}

func (s *stubAnalyticsRepo) CountCustomers(context.Context) (int, error) {
	s.countCalls++
	return s.count, nil
}

func setupCache(t *testing.T) (*CachedAnalyticsRepository, *stubAnalyticsRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &stubAnalyticsRepo{
		items: []analytics.LineItem{
			{
				OrderID: 1, OrderDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				CustomerID: 1, CustomerName: "Alice", CustomerEmail: "alice@example.com",
				ProductID: 1, ProductName: "Widget",
				Quantity: 2, UnitPrice: decimal.RequireFromString("10.00"),
			},
		},
		count: 3,
	}

	return NewCachedAnalyticsRepository(repo, client, time.Minute), repo, mr
}

func TestLineItems_PopulatesAndServesFromCache(t *testing.T) {
	cached, repo, mr := setupCache(t)
	ctx := context.Background()

	first, err := cached.LineItems(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.itemCalls)
	assert.True(t, mr.Exists(lineItemsKey))

	second, err := cached.LineItems(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, repo.itemCalls, "second read must come from cache")
	assert.Equal(t, first[0].CustomerName, second[0].CustomerName)
	// decimals survive the JSON round trip with their value intact
	assert.True(t, second[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestLineItems_CorruptCacheFallsThrough(t *testing.T) {
	cached, repo, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(lineItemsKey, "{not json"))

	items, err := cached.LineItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, repo.itemCalls)
}

func TestLineItems_RedisDownFallsThrough(t *testing.T) {
	cached, repo, mr := setupCache(t)
	ctx := context.Background()

	mr.Close()

	items, err := cached.LineItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, repo.itemCalls)
}

func TestCountCustomers_Cached(t *testing.T) {
	cached, repo, _ := setupCache(t)
	ctx := context.Background()

	count, err := cached.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = cached.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, repo.countCalls)
}

func TestInvalidate_DropsCachedKeys(t *testing.T) {
	cached, repo, mr := setupCache(t)
	ctx := context.Background()

	_, err := cached.LineItems(ctx)
	require.NoError(t, err)
	_, err = cached.CountCustomers(ctx)
	require.NoError(t, err)

	cached.Invalidate(ctx)
	assert.False(t, mr.Exists(lineItemsKey))
	assert.False(t, mr.Exists(customerCountKey))

	_, err = cached.LineItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.itemCalls)
}
