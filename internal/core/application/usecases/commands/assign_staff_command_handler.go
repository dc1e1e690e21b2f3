package commands

import (
	"context"

	"resty/internal/core/ports"
)

// AssignStaffCommandHandler resolves a staff member against the directory and
// records the assignment on the order. Reassignment is permitted; assigning
// to a served order is rejected by the domain.
type AssignStaffCommandHandler struct {
	orderRepository ports.OrderRepository
	staffDirectory  ports.StaffDirectory
}

// NewAssignStaffCommandHandler creates a handler for staff assignment.
func NewAssignStaffCommandHandler(
	orderRepository ports.OrderRepository,
	staffDirectory ports.StaffDirectory,
) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		orderRepository: orderRepository,
		staffDirectory:  staffDirectory,
	}
}

// Handle processes the assignment command. Returns an ObjectNotFoundError
// when either the order or the staff member does not exist; the lookup is
// never silently defaulted.
func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, err := h.staffDirectory.ByName(cmd.StaffName())
	if err != nil {
		return err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignStaff(member); err != nil {
		return err
	}

	return h.orderRepository.Update(ctx, aggregate)
}
