package commands

import (
	"errors"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/pkg/guard"
)

var (
	ErrAssignStaffCommandIsNotConstructed = errors.New(
		"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
	)
	ErrStaffNameIsRequired = errors.New("staff name is required")
)

// AssignStaffCommand represents a request to make a staff member responsible
// for an order. Assignment is independent of status and may happen in any
// state prior to served; reassignment overwrites the previous assignee.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	staffName string

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates a command to assign a staff member by name.
// The name is resolved against the staff directory when the command is handled.
func NewAssignStaffCommand(orderID kernel.OrderID, staffName string) (AssignStaffCommand, error) {
	assignCommand := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setStaffName(staffName),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignStaffCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// StaffName returns the display name of the staff member to assign.
func (c AssignStaffCommand) StaffName() string {
	return c.staffName
}

func (c *AssignStaffCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignStaffCommand) setStaffName(staffName string) error {
	if staffName == "" {
		return ErrStaffNameIsRequired
	}
	c.staffName = staffName
	return nil
}
