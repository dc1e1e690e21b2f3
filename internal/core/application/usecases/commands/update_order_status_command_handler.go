package commands

import (
	"context"

	"resty/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies an explicitly requested status
// transition. The stored order is left unchanged when the transition is not
// the legal successor of its current status.
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
	clock           ports.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for explicit status updates.
func NewUpdateOrderStatusCommandHandler(
	orderRepository ports.OrderRepository,
	clock ports.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
		clock:           clock,
	}
}

// Handle processes the update command. Returns an ObjectNotFoundError when
// the order does not exist and an InvalidTransitionError when the requested
// status is not the legal successor — in that case nothing is written back.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	return h.orderRepository.Update(ctx, aggregate)
}
