package order

import (
	"errors"
	"fmt"
	"time"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/staff"
	"resty/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	// initialEstimate is the ready-time offset applied at checkout.
	initialEstimate = 45 * time.Minute

	// preparingEstimate is the ready-time offset applied when the kitchen
	// actually starts preparing the order.
	preparingEstimate = 30 * time.Minute
)

// Order represents a placed dine-in order. It is the aggregate root that
// manages the order lifecycle from checkout through preparation to serving.
//
// Order follows these invariants:
//   - Must have a valid ORD-NNN identifier, customer name, and positive table number
//   - Must have at least one line item; items are immutable once attached
//   - total always equals the sum of line totals, after every mutation
//   - Status only advances forward through the pipeline; it never regresses or skips
//   - Can only be created through the NewOrder constructor
//
// The struct uses private fields to ensure encapsulation; every mutation goes
// through a validated method.
type Order struct {
	// id is the store-assigned unique identifier
	id kernel.OrderID

	// customerName is the name the order was placed under
	customerName string

	// tableNumber is the table the order is served at (positive)
	tableNumber int

	// status is the current state in the fulfillment pipeline
	status Status

	// orderTime is the creation timestamp (immutable)
	orderTime time.Time

	// estimatedReadyTime is set at creation and recomputed when preparation starts
	estimatedReadyTime time.Time

	// items is the ordered, non-empty sequence of line items
	items []LineItem

	// total is the cached sum of line totals
	total decimal.Decimal

	// specialRequests is an optional free-form note for the kitchen
	specialRequests string

	// assignedStaff is the staff member responsible for the order (nil if unassigned)
	assignedStaff *staff.Member

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order from a checkout snapshot. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order starts in Pending status with orderTime = now and an estimated
// ready time 45 minutes out. The total is computed from the line items and
// stays equal to their sum for the lifetime of the order.
//
// Parameters:
//   - id: Store-assigned unique identifier
//   - customerName: Must be non-empty
//   - tableNumber: Must be positive
//   - items: Must contain at least one constructed LineItem
//   - specialRequests: Optional free-form note
//   - now: Creation timestamp from the injected clock
func NewOrder(
	id kernel.OrderID,
	customerName string,
	tableNumber int,
	items []LineItem,
	specialRequests string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setTableNumber(tableNumber),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.specialRequests = specialRequests
	order.orderTime = now
	order.estimatedReadyTime = now.Add(initialEstimate)
	order.total = order.sumLineTotals()

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TableNumber returns the table the order is served at.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderTime returns the creation timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// EstimatedReadyTime returns when the order is expected to be ready.
func (o *Order) EstimatedReadyTime() time.Time {
	return o.estimatedReadyTime
}

// Items returns a copy of the order's line items in their original order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total. The total always equals the sum of
// quantity × unit price over all line items.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// SpecialRequests returns the optional free-form note, empty if none.
func (o *Order) SpecialRequests() string {
	return o.specialRequests
}

// AssignedStaff returns the staff member responsible for the order.
// Returns nil if no one has been assigned.
func (o *Order) AssignedStaff() *staff.Member {
	return o.assignedStaff
}

// Advance moves the order to the next status in the pipeline.
//
// Advancing a served order is a harmless no-op, not an error: the admin UI
// repeatedly invokes "mark next" without checking terminality first. When the
// order enters Preparing, the estimated ready time is recomputed from now,
// since the initial estimate was made before the kitchen picked it up.
func (o *Order) Advance(now time.Time) {
	if o.status.IsTerminal() {
		return
	}

	o.status = o.status.Next()
	if o.status == Preparing {
		o.estimatedReadyTime = now.Add(preparingEstimate)
	}
}

// ChangeStatus sets the order to an explicitly requested status.
//
// The target must be the legal successor of the current status; skipping and
// regressing are rejected with an InvalidTransitionError and the order is left
// unchanged. Callers should normally drive transitions through Advance; this
// method exists to defend the pipeline against UI code that submits raw
// status values.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.status == Preparing {
		o.estimatedReadyTime = now.Add(preparingEstimate)
	}
	return nil
}

// AssignStaff assigns a staff member to the order.
//
// Assignment is independent of status and may happen in any state prior to
// Served; reassignment overwrites the previous assignee. Assigning to a
// served order is rejected.
func (o *Order) AssignStaff(member staff.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.assignedStaff = &member
	return nil
}

// Clone returns a deep value copy of the order. The order store hands out
// clones so no caller ever holds a live reference into the stored entity.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = make([]LineItem, len(o.items))
	copy(clone.items, o.items)
	if o.assignedStaff != nil {
		member := *o.assignedStaff
		clone.assignedStaff = &member
	}
	return &clone
}

func (o *Order) sumLineTotals() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table number",
			fmt.Errorf("%d is not greater than 0", tableNumber))
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
