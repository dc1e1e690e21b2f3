// Package order provides domain entities and business logic for order
// lifecycle management in the restaurant system. It implements the Order
// aggregate root with its fulfillment state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces the fixed fulfillment pipeline
//   - LineItem: An immutable value object for one ordered dish
//
// Key business rules:
//   - Order status follows a fixed forward pipeline: pending -> preparing -> ready -> served
//   - Served is terminal; advancing a served order is a no-op, never an error
//   - The order total always equals the sum of line totals
//   - Staff may be assigned or reassigned in any state prior to served
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
