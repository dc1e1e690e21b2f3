package queries

import (
	"context"
	"sort"
	"time"

	"resty/internal/core/domain/model/order"
	"resty/internal/core/domain/services"
	"resty/internal/core/ports"
)

// uncategorized is the fallback bucket for line items whose menu item has
// left the catalog since the order was placed.
const uncategorized = "other"

// GetDashboardStatsQueryHandler derives the dashboard summary from the
// latest order snapshot. Classification of line items into categories goes
// through the catalog; bucketing and "today" are anchored on the injected
// clock.
type GetDashboardStatsQueryHandler struct {
	orderRepository ports.OrderRepository
	catalog         ports.Catalog
	clock           ports.Clock
	reporter        services.Reporter
}

// NewGetDashboardStatsQueryHandler creates a handler for the dashboard view.
func NewGetDashboardStatsQueryHandler(
	orderRepository ports.OrderRepository,
	catalog ports.Catalog,
	clock ports.Clock,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		orderRepository: orderRepository,
		catalog:         catalog,
		clock:           clock,
		reporter:        services.NewReporter(),
	}
}

// Handle executes the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	snapshot, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	now := h.clock.Now()

	hourCounts := h.reporter.OrdersByHourBucket(snapshot, hourBucket)
	categoryCounts := h.reporter.CategoryDistribution(snapshot, h.classify)

	return GetDashboardStatsQueryResponse{
		ActiveOrders: h.reporter.ActiveOrderCount(snapshot),
		TotalOrders:  len(snapshot),
		RevenueToday: h.reporter.RevenueForPeriod(snapshot, services.SameDay(now)),
		OrdersByHour: sortedHourBuckets(hourCounts),
		Categories:   sortedCategories(categoryCounts),
		GeneratedAt:  now,
	}, nil
}

func (h GetDashboardStatsQueryHandler) classify(item order.LineItem) string {
	category, err := h.catalog.CategoryOf(item.ItemID())
	if err != nil {
		return uncategorized
	}
	return category
}

// hourBucket maps an order time to its hour-of-day label, e.g. "6PM".
func hourBucket(t time.Time) string {
	return t.Format("3PM")
}

func sortedHourBuckets(counts map[string]int) []HourBucketCount {
	buckets := make([]HourBucketCount, 0, len(counts))
	for hour, count := range counts {
		buckets = append(buckets, HourBucketCount{Hour: hour, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return hourOrdinal(buckets[i].Hour) < hourOrdinal(buckets[j].Hour)
	})
	return buckets
}

// hourOrdinal converts an hour label back to its 0-23 position so buckets
// sort chronologically within the day.
func hourOrdinal(label string) int {
	t, err := time.Parse("3PM", label)
	if err != nil {
		return 0
	}
	return t.Hour()
}

func sortedCategories(counts map[string]int) []CategoryCount {
	categories := make([]CategoryCount, 0, len(counts))
	for category, units := range counts {
		categories = append(categories, CategoryCount{Category: category, Units: units})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Units != categories[j].Units {
			return categories[i].Units > categories[j].Units
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}
