package queries

import (
	"context"

	"resty/internal/core/domain/services"
	"resty/internal/core/ports"
)

// SearchOrdersQueryHandler runs the combined board filter over the latest
// order store snapshot. Result ordering follows the store's insertion order;
// the engine never resorts.
type SearchOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
	engine          services.QueryEngine
}

// NewSearchOrdersQueryHandler creates a handler for board searches.
func NewSearchOrdersQueryHandler(orderRepository ports.OrderRepository) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{
		orderRepository: orderRepository,
		engine:          services.NewQueryEngine(),
	}
}

// Handle executes the query and returns the matching orders as board read
// models.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := h.engine.CombinedFilter(snapshot, query.Text(), query.Facet())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(matched), nil
}
