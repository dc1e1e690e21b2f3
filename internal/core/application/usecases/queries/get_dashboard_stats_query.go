package queries

import (
	"errors"
	"time"

	"resty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery retrieves the dashboard counters and distributions
// derived from the current order snapshot. This is a parameterless query.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard view.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// HourBucketCount is the order count of one hour bucket, e.g. {"6PM", 12}.
type HourBucketCount struct {
	Hour  string
	Count int
}

// CategoryCount is the ordered-unit count of one menu category.
type CategoryCount struct {
	Category string
	Units    int
}

// GetDashboardStatsQueryResponse carries the dashboard summary: active order
// count, today's revenue, per-hour order volume and per-category composition.
// Slices are sorted for stable rendering: hour buckets chronologically within
// the day, categories by descending unit count.
type GetDashboardStatsQueryResponse struct {
	ActiveOrders int
	TotalOrders  int
	RevenueToday decimal.Decimal
	OrdersByHour []HourBucketCount
	Categories   []CategoryCount
	GeneratedAt  time.Time
}
