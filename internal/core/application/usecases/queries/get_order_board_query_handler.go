package queries

import (
	"context"

	"resty/internal/core/domain/model/order"
	"resty/internal/core/domain/services"
	"resty/internal/core/ports"
)

// GetOrderBoardQueryHandler partitions the latest snapshot into the fixed
// status buckets. The partition is complete: every order appears in exactly
// one bucket and the bucket counts sum to the snapshot size.
type GetOrderBoardQueryHandler struct {
	orderRepository ports.OrderRepository
	engine          services.QueryEngine
}

// NewGetOrderBoardQueryHandler creates a handler for the grouped board view.
func NewGetOrderBoardQueryHandler(orderRepository ports.OrderRepository) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{
		orderRepository: orderRepository,
		engine:          services.NewQueryEngine(),
	}
}

// Handle executes the query and returns the buckets in pipeline order:
// pending, preparing, ready, served.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) (GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	snapshot, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	grouped := h.engine.GroupByStatus(snapshot)

	buckets := make([]BoardBucket, 0, len(order.Pipeline()))
	for _, status := range order.Pipeline() {
		buckets = append(buckets, BoardBucket{
			Status: status.String(),
			Label:  status.DisplayLabel(),
			Orders: newOrderResponses(grouped[status]),
		})
	}

	return GetOrderBoardQueryResponse{
		Buckets:    buckets,
		TotalCount: len(snapshot),
	}, nil
}
