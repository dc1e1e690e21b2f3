package order

import (
	"fmt"

	"resty/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward pipeline so orders
// always progress through the kitchen workflow in the same direction.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Served
//
// Served is terminal: advancing a served order is a harmless no-op, never an
// error, because the admin board repeatedly invokes "mark next" without
// checking terminality first.
//
// Status is a value object that validates state transitions and provides the
// display metadata (label, badge color, progress percentage) consumed by the
// admin order board, the customer tracking page, and the dashboard. Keeping
// one authoritative transition table here is what prevents the per-view
// switch statements from drifting apart.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	// Orders in this status are waiting for the kitchen to pick them up.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	// The estimated ready time is recomputed when this state is entered.
	Preparing

	// Ready indicates the order is plated and waiting to be served.
	Ready

	// Served indicates the order has been delivered to the table.
	// This is a final state with no further transitions allowed.
	Served
)

// pipeline is the authoritative forward ordering of the status machine.
var pipeline = []Status{Pending, Preparing, Ready, Served}

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the wire format used by filters and the HTTP layer.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
	}
}

// StatusFromString parses a status from its wire form ("pending", "preparing",
// "ready", "served"). Returns an error for any other input. Used when the
// presentation layer submits an explicit status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Served.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is the final pipeline state.
func (s Status) IsTerminal() bool {
	return s == Served
}

// Next returns the status immediately following the current one in the
// pipeline. Served maps to itself, making advancement idempotent at the
// terminal state. Invalid statuses map to Unknown.
func (s Status) Next() Status {
	switch s {
	case Pending:
		return Preparing
	case Preparing:
		return Ready
	case Ready:
		return Served
	case Served:
		return Served
	default:
		return Unknown
	}
}

// TransitionTo validates that target is the legal successor of the current
// status and returns it.
//
// Returns:
//   - (target, nil) when target is exactly Next() and the current status is
//     not terminal
//   - (Unknown, InvalidTransitionError) otherwise — skipping and regressing
//     are both rejected
//
// This defends the "no skipping/regressing" invariant for callers that submit
// explicit status values instead of driving transitions through Advance.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() || target != s.Next() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ValidateAssign checks if the status allows staff assignment without
// performing any transition.
//
// Staff may be assigned or reassigned in any state prior to Served; assigning
// to a served order is rejected.
func (s Status) ValidateAssign() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign staff", s.String()))
	}
	return nil
}

// Progress returns the completion percentage displayed for the status.
// The exact values are display policy, but they are strictly increasing
// along the pipeline: pending < preparing < ready < served.
func (s Status) Progress() int {
	switch s {
	case Pending:
		return 15
	case Preparing:
		return 45
	case Ready:
		return 85
	case Served:
		return 100
	default:
		return 0
	}
}

// DisplayLabel returns the step label shown on the customer tracking page.
func (s Status) DisplayLabel() string {
	switch s {
	case Pending:
		return "Order Received"
	case Preparing:
		return "Preparing"
	case Ready:
		return "Ready"
	case Served:
		return "Served"
	default:
		return "Unknown"
	}
}

// NextActionLabel returns the caption for the admin board's "mark next"
// button while the order is in this status.
func (s Status) NextActionLabel() string {
	switch s {
	case Pending:
		return "Start Preparing"
	case Preparing:
		return "Mark Ready"
	case Ready:
		return "Mark Served"
	default:
		return "Complete"
	}
}

// BadgeColor returns the status badge styling used by every view.
func (s Status) BadgeColor() string {
	switch s {
	case Pending:
		return "bg-yellow-100 text-yellow-800"
	case Preparing:
		return "bg-blue-100 text-blue-800"
	case Ready:
		return "bg-orange-100 text-orange-800"
	case Served:
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// ProgressColor returns the progress bar styling for the status.
func (s Status) ProgressColor() string {
	switch s {
	case Pending:
		return "bg-yellow-500"
	case Preparing:
		return "bg-blue-500"
	case Ready:
		return "bg-orange-500"
	case Served:
		return "bg-green-500"
	default:
		return "bg-gray-500"
	}
}

// Pipeline returns the forward ordering of all valid statuses. The slice is a
// copy; callers may not mutate the authoritative table.
func Pipeline() []Status {
	out := make([]Status, len(pipeline))
	copy(out, pipeline)
	return out
}
