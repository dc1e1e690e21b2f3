package commands

import (
	"context"

	"resty/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one step forward in the pipeline.
// Loads the latest snapshot, applies the domain transition, and writes the
// result back, so concurrent admins resolve to a single legal sequence.
type AdvanceOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	clock           ports.Clock
}

// NewAdvanceOrderCommandHandler creates a handler for advance operations.
func NewAdvanceOrderCommandHandler(
	orderRepository ports.OrderRepository,
	clock ports.Clock,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		orderRepository: orderRepository,
		clock:           clock,
	}
}

// Handle processes the advance command. Returns an ObjectNotFoundError when
// the order does not exist; advancing a served order succeeds without
// changing anything.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.Advance(h.clock.Now())

	return h.orderRepository.Update(ctx, aggregate)
}
