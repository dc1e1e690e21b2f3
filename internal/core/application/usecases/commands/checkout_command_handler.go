package commands

import (
	"context"

	"resty/internal/core/domain/model/order"
	"resty/internal/core/ports"
)

// CheckoutCommandHandler handles the business logic for placing an order.
// Materializes the cart into line items, reserves the next order id, and
// stores the new order in pending status.
//
// The cart is cleared only after the order has been accepted by the store —
// a failed checkout leaves the cart intact.
type CheckoutCommandHandler struct {
	orderRepository ports.OrderRepository
	catalog         ports.Catalog
	clock           ports.Clock
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	orderRepository ports.OrderRepository,
	catalog ports.Catalog,
	clock ports.Clock,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		orderRepository: orderRepository,
		catalog:         catalog,
		clock:           clock,
	}
}

// Handle processes the checkout command and returns a snapshot of the placed
// order. The order starts in pending status with its total computed from the
// cart's line items at current catalog prices.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := cmd.Cart().ToLineItems(h.catalog)
	if err != nil {
		return nil, err
	}

	id, err := h.orderRepository.NextID()
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		id,
		cmd.CustomerName(),
		cmd.TableNumber(),
		items,
		cmd.SpecialRequests(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, placed); err != nil {
		return nil, err
	}

	cmd.Cart().Clear()
	return placed, nil
}
