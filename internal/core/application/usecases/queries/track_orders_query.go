package queries

import (
	"errors"
	"time"

	"resty/internal/pkg/guard"
)

var (
	ErrTrackOrdersQueryIsNotConstructed = errors.New(
		"TrackOrdersQuery must be created via NewTrackOrdersQuery constructor",
	)
)

// TrackOrdersQuery retrieves the customer-facing tracking cards for orders
// matching a free-text search (order number, customer name or table number).
// An empty text returns every order.
type TrackOrdersQuery struct {
	text string

	guard guard.ConstructorGuard
}

// NewTrackOrdersQuery creates a tracking query for the given search text.
func NewTrackOrdersQuery(text string) TrackOrdersQuery {
	return TrackOrdersQuery{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q TrackOrdersQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrdersQueryIsNotConstructed)
}

// Text returns the free-text search query.
func (q TrackOrdersQuery) Text() string {
	return q.text
}

// TrackingStep is one stop on the tracking timeline. Exactly one step is
// active for a non-terminal order; a served order has every step completed.
type TrackingStep struct {
	Status    string
	Label     string
	Completed bool
	Active    bool
}

// TrackedOrderResponse is the customer-facing read model of one order:
// the order card plus its progress bar and timeline.
type TrackedOrderResponse struct {
	Order         OrderResponse
	Progress      int
	ProgressColor string
	Steps         []TrackingStep
}

// TrackOrdersQueryResponse lists the tracking cards for the matched orders.
type TrackOrdersQueryResponse struct {
	Orders []TrackedOrderResponse
	Now    time.Time
}
