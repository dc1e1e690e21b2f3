package queries

import (
	"context"

	"resty/internal/core/domain/model/order"
	"resty/internal/core/domain/services"
	"resty/internal/core/ports"
)

// TrackOrdersQueryHandler builds the customer tracking view from the latest
// order snapshot.
type TrackOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
	clock           ports.Clock
	engine          services.QueryEngine
}

// NewTrackOrdersQueryHandler creates a handler for the tracking view.
func NewTrackOrdersQueryHandler(
	orderRepository ports.OrderRepository,
	clock ports.Clock,
) TrackOrdersQueryHandler {
	return TrackOrdersQueryHandler{
		orderRepository: orderRepository,
		clock:           clock,
		engine:          services.NewQueryEngine(),
	}
}

// Handle executes the query. Matched orders keep their snapshot order.
func (h TrackOrdersQueryHandler) Handle(
	ctx context.Context,
	query TrackOrdersQuery,
) (TrackOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrdersQueryResponse{}, err
	}

	snapshot, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return TrackOrdersQueryResponse{}, err
	}

	matched := h.engine.Search(snapshot, query.Text())

	tracked := make([]TrackedOrderResponse, 0, len(matched))
	for _, o := range matched {
		tracked = append(tracked, newTrackedOrderResponse(o))
	}

	return TrackOrdersQueryResponse{
		Orders: tracked,
		Now:    h.clock.Now(),
	}, nil
}

func newTrackedOrderResponse(o *order.Order) TrackedOrderResponse {
	current := o.Status()

	steps := make([]TrackingStep, 0, len(order.Pipeline()))
	for _, status := range order.Pipeline() {
		completed := status < current || current.IsTerminal()
		steps = append(steps, TrackingStep{
			Status:    status.String(),
			Label:     status.DisplayLabel(),
			Completed: completed,
			Active:    status == current && !current.IsTerminal(),
		})
	}

	return TrackedOrderResponse{
		Order:         newOrderResponse(o),
		Progress:      current.Progress(),
		ProgressColor: current.ProgressColor(),
		Steps:         steps,
	}
}
