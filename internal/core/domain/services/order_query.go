package services

import (
	"strconv"
	"strings"

	"resty/internal/core/domain/model/order"
	"resty/internal/pkg/errs"
)

// StatusFilterAll is the status facet value that matches every order.
const StatusFilterAll = "all"

// QueryEngine is a domain service implementing the filtering and grouping
// predicates shared by the admin order board and the customer tracking page.
//
// The engine is pure and stateless: every method takes a snapshot of orders
// and returns derived results without mutating its input. Results always
// preserve the snapshot's original relative ordering — the engine filters and
// partitions, it never resorts.
//
// Example usage:
//
//	engine := services.NewQueryEngine()
//	visible, err := engine.CombinedFilter(snapshot, "jane", "preparing")
//	if err != nil {
//	    // the status facet was not a valid status or "all"
//	}
type QueryEngine struct{}

// NewQueryEngine creates a new QueryEngine instance.
func NewQueryEngine() QueryEngine {
	return QueryEngine{}
}

// Search returns the orders matching the free-text query: a case-insensitive
// substring match against the order id, the customer name, or the string form
// of the table number. An empty query matches every order.
func (QueryEngine) Search(orders []*order.Order, text string) []*order.Order {
	needle := strings.ToLower(text)

	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID().String()), needle) ||
			strings.Contains(strings.ToLower(o.CustomerName()), needle) ||
			strings.Contains(strconv.Itoa(o.TableNumber()), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}

// FilterByStatus returns the orders whose status matches the facet value.
// The facet is either StatusFilterAll, which is an identity pass-through, or
// the wire form of a single status. Any other value is rejected.
func (QueryEngine) FilterByStatus(orders []*order.Order, facet string) ([]*order.Order, error) {
	if facet == StatusFilterAll {
		return orders, nil
	}

	status, err := order.StatusFromString(facet)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status filter", err)
	}

	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// CombinedFilter applies the free-text search and the status facet as a
// logical AND. This is the predicate behind the admin order board; the
// customer tracking search uses the same predicate with facet fixed to "all".
func (e QueryEngine) CombinedFilter(orders []*order.Order, text, facet string) ([]*order.Order, error) {
	byStatus, err := e.FilterByStatus(orders, facet)
	if err != nil {
		return nil, err
	}
	return e.Search(byStatus, text), nil
}

// GroupByStatus partitions the orders into the four pipeline buckets.
//
// Every order lands in exactly one bucket and the total count across buckets
// equals the input size. Bucket iteration order is fixed by order.Pipeline():
// pending, preparing, ready, served. Within a bucket the snapshot's relative
// ordering is preserved.
func (QueryEngine) GroupByStatus(orders []*order.Order) map[order.Status][]*order.Order {
	buckets := make(map[order.Status][]*order.Order, len(order.Pipeline()))
	for _, status := range order.Pipeline() {
		buckets[status] = make([]*order.Order, 0)
	}
	for _, o := range orders {
		buckets[o.Status()] = append(buckets[o.Status()], o)
	}
	return buckets
}
