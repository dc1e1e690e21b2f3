package ports

import (
	"context"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the order store, the
// single source of truth for order state, timestamps, and staff assignment.
//
// Implementations must hand out value snapshots, never live references:
// after a mutation, callers observe the new state only through Get/GetAll.
// Orders are never deleted; the store retains them for its lifetime.
type OrderRepository interface {
	// NextID reserves the next identifier in the store's monotonic ORD-NNN
	// sequence. Identifiers are unique for the lifetime of the store.
	NextID() (kernel.OrderID, error)

	// Add stores a new order. The order's id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that has the same id.
	// Returns an ObjectNotFoundError if no such order exists (no upsert).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order snapshot by its identifier.
	// Returns an ObjectNotFoundError if no such order exists; the store never
	// substitutes a default order for a missing one.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves snapshots of every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
