package queries_test

import (
	"testing"
	"time"

	"resty/internal/core/application/usecases/queries"
	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
	"resty/internal/core/ports"
	"resty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubCatalog classifies a fixed set of items for dashboard tests.
type stubCatalog struct {
	categories map[string]string
}

func (c stubCatalog) Items() []ports.MenuItem { return nil }

func (c stubCatalog) PriceOf(itemID string) (decimal.Decimal, error) {
	if _, ok := c.categories[itemID]; !ok {
		return decimal.Decimal{}, errs.NewObjectNotFoundError("menu item", itemID)
	}
	return decimal.Zero, nil
}

func (c stubCatalog) NameOf(itemID string) (string, error) {
	if _, ok := c.categories[itemID]; !ok {
		return "", errs.NewObjectNotFoundError("menu item", itemID)
	}
	return "Item " + itemID, nil
}

func (c stubCatalog) CategoryOf(itemID string) (string, error) {
	category, ok := c.categories[itemID]
	if !ok {
		return "", errs.NewObjectNotFoundError("menu item", itemID)
	}
	return category, nil
}

func createOrderWithItems(t *testing.T, seq int, orderTime time.Time, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)

	o, err := order.NewOrder(id, "Test Customer", 1, items, "", orderTime)
	require.NoError(t, err)

	for o.Status() != status {
		o.Advance(orderTime)
	}
	return o
}

func item(t *testing.T, itemID string, quantity int, price string) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(itemID, "Item "+itemID, quantity, decimal.RequireFromString(price), "")
	require.NoError(t, err)
	return li
}

func TestGetDashboardStatsQueryHandler_Handle(t *testing.T) {
	now := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	catalog := stubCatalog{categories: map[string]string{
		"1": "mains",
		"5": "desserts",
		"6": "beverages",
	}}

	t.Run("should derive all dashboard counters from the snapshot", func(t *testing.T) {
		snapshot := []*order.Order{
			createOrderWithItems(t, 1, now.Add(-30*time.Minute), order.Served,
				item(t, "1", 1, "28.99"), item(t, "6", 2, "4.99")),
			createOrderWithItems(t, 2, now.Add(-10*time.Minute), order.Preparing,
				item(t, "5", 1, "12.99")),
			createOrderWithItems(t, 3, now.Add(-25*time.Hour), order.Served,
				item(t, "1", 1, "28.99")),
		}

		repo := new(MockOrderRepository)
		repo.On("GetAll", mock.Anything).Return(snapshot, nil).Once()

		h := queries.NewGetDashboardStatsQueryHandler(repo, catalog, fixedClock{now})
		stats, err := h.Handle(t.Context(), queries.NewGetDashboardStatsQuery())

		require.NoError(t, err)
		assert.Equal(t, 1, stats.ActiveOrders)
		assert.Equal(t, 3, stats.TotalOrders)
		assert.True(t, stats.RevenueToday.Equal(decimal.RequireFromString("51.96")),
			"expected 51.96, got %s", stats.RevenueToday)
		assert.Equal(t, now, stats.GeneratedAt)
	})

	t.Run("should bucket order volume chronologically by hour", func(t *testing.T) {
		snapshot := []*order.Order{
			createOrderWithItems(t, 1, time.Date(2025, 6, 15, 18, 5, 0, 0, time.UTC), order.Pending, item(t, "1", 1, "28.99")),
			createOrderWithItems(t, 2, time.Date(2025, 6, 15, 18, 50, 0, 0, time.UTC), order.Pending, item(t, "1", 1, "28.99")),
			createOrderWithItems(t, 3, time.Date(2025, 6, 15, 12, 15, 0, 0, time.UTC), order.Pending, item(t, "1", 1, "28.99")),
		}

		repo := new(MockOrderRepository)
		repo.On("GetAll", mock.Anything).Return(snapshot, nil).Once()

		h := queries.NewGetDashboardStatsQueryHandler(repo, catalog, fixedClock{now})
		stats, err := h.Handle(t.Context(), queries.NewGetDashboardStatsQuery())

		require.NoError(t, err)
		require.Len(t, stats.OrdersByHour, 2)
		assert.Equal(t, queries.HourBucketCount{Hour: "12PM", Count: 1}, stats.OrdersByHour[0])
		assert.Equal(t, queries.HourBucketCount{Hour: "6PM", Count: 2}, stats.OrdersByHour[1])
	})

	t.Run("should count category units with descending ordering", func(t *testing.T) {
		snapshot := []*order.Order{
			createOrderWithItems(t, 1, now, order.Pending,
				item(t, "5", 3, "12.99"), item(t, "1", 1, "28.99")),
			createOrderWithItems(t, 2, now, order.Pending,
				item(t, "5", 1, "12.99"), item(t, "6", 1, "4.99")),
		}

		repo := new(MockOrderRepository)
		repo.On("GetAll", mock.Anything).Return(snapshot, nil).Once()

		h := queries.NewGetDashboardStatsQueryHandler(repo, catalog, fixedClock{now})
		stats, err := h.Handle(t.Context(), queries.NewGetDashboardStatsQuery())

		require.NoError(t, err)
		require.Len(t, stats.Categories, 3)
		assert.Equal(t, queries.CategoryCount{Category: "desserts", Units: 4}, stats.Categories[0])
		// Ties break alphabetically.
		assert.Equal(t, queries.CategoryCount{Category: "beverages", Units: 1}, stats.Categories[1])
		assert.Equal(t, queries.CategoryCount{Category: "mains", Units: 1}, stats.Categories[2])
	})

	t.Run("should route retired items into the fallback category", func(t *testing.T) {
		snapshot := []*order.Order{
			createOrderWithItems(t, 1, now, order.Pending, item(t, "99", 2, "9.99")),
		}

		repo := new(MockOrderRepository)
		repo.On("GetAll", mock.Anything).Return(snapshot, nil).Once()

		h := queries.NewGetDashboardStatsQueryHandler(repo, catalog, fixedClock{now})
		stats, err := h.Handle(t.Context(), queries.NewGetDashboardStatsQuery())

		require.NoError(t, err)
		require.Len(t, stats.Categories, 1)
		assert.Equal(t, queries.CategoryCount{Category: "other", Units: 2}, stats.Categories[0])
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		repo := new(MockOrderRepository)
		h := queries.NewGetDashboardStatsQueryHandler(repo, catalog, fixedClock{now})

		_, err := h.Handle(t.Context(), queries.GetDashboardStatsQuery{})

		require.Error(t, err)
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})
}
