package services

import (
	"time"

	"resty/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Reporter is a domain service deriving the dashboard's summary counters and
// distributions from a snapshot of the order store.
//
// All methods are pure functions of their inputs — no internal state, fully
// reproducible from a given snapshot, which keeps the dashboard numbers
// deterministic under test. Time-based views take their bucketing policy from
// the caller so the reporter itself never touches a clock.
type Reporter struct{}

// NewReporter creates a new Reporter instance.
func NewReporter() Reporter {
	return Reporter{}
}

// ActiveOrderCount returns the number of orders still moving through the
// pipeline, i.e. every order whose status is not served.
func (Reporter) ActiveOrderCount(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		if !o.Status().IsTerminal() {
			count++
		}
	}
	return count
}

// RevenueForPeriod sums the totals of the orders whose order time satisfies
// the period predicate, e.g. "today" or "this week".
func (Reporter) RevenueForPeriod(orders []*order.Order, within func(time.Time) bool) decimal.Decimal {
	revenue := decimal.Zero
	for _, o := range orders {
		if within(o.OrderTime()) {
			revenue = revenue.Add(o.Total())
		}
	}
	return revenue
}

// OrdersByHourBucket counts orders per caller-defined time bucket, feeding
// the order-volume-over-time view. The bucketing function maps an order time
// to its bucket label, e.g. "6PM".
func (Reporter) OrdersByHourBucket(orders []*order.Order, bucket func(time.Time) string) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[bucket(o.OrderTime())]++
	}
	return counts
}

// CategoryDistribution counts ordered units per category across all orders,
// using the caller-supplied classifier from line item to category. It feeds
// the order-composition breakdown on the dashboard.
func (Reporter) CategoryDistribution(orders []*order.Order, classify func(order.LineItem) string) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items() {
			counts[classify(item)] += item.Quantity()
		}
	}
	return counts
}

// SameDay returns a period predicate matching timestamps that fall on the
// same calendar day as ref, in ref's location.
func SameDay(ref time.Time) func(time.Time) bool {
	refYear, refMonth, refDay := ref.Date()
	return func(t time.Time) bool {
		year, month, day := t.In(ref.Location()).Date()
		return year == refYear && month == refMonth && day == refDay
	}
}
