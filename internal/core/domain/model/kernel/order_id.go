package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"resty/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

var orderIDPattern = regexp.MustCompile(`^ORD-\d{3,}$`)

// OrderID is a value object that identifies an order in the ORD-NNN format,
// e.g. "ORD-001". The numeric part is assigned monotonically by the order store
// and is zero-padded to at least three digits.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewOrderID(1)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "ORD-001"
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from a store-assigned sequence number.
// The sequence must be positive; it is zero-padded to three digits so the
// identifiers sort naturally on the order board.
func NewOrderID(seq int) (OrderID, error) {
	if seq <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order sequence",
			fmt.Errorf("%d is not greater than 0", seq))
	}
	return OrderID{value: fmt.Sprintf("ORD-%03d", seq)}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// Returns an error if the string does not match the ORD-NNN format.
// This function is typically used when parsing identifiers arriving from
// the presentation layer.
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%q does not match the ORD-NNN format", s))
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its ORD-NNN form.
// For a zero value OrderID this returns an empty string.
func (id OrderID) String() string {
	return id.value
}

// Seq returns the numeric part of the identifier.
// Returns 0 for a zero value OrderID.
func (id OrderID) Seq() int {
	raw := strings.TrimPrefix(id.value, "ORD-")
	seq, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return seq
}

// IsEqual compares two OrderIDs for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
