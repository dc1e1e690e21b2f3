package orderrepo

import (
	"context"
	"sync"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
	"resty/internal/pkg/errs"
)

// InMemoryOrderRepository implements OrderRepository with an in-process map.
// It is the order store's single source of truth for the lifetime of the
// service; orders are never deleted.
//
// Every operation takes the repository mutex, which serializes concurrent
// writers: the last write to an order wins wholesale, fields from two writers
// never interleave. Reads hand out deep copies, so a caller can never mutate
// stored state through a returned order.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	orders  map[kernel.OrderID]*order.Order
	seq     []kernel.OrderID
	nextSeq int
}

// NewInMemoryOrderRepository creates an empty order repository. The ORD-NNN
// sequence starts at 1.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders:  make(map[kernel.OrderID]*order.Order),
		nextSeq: 1,
	}
}

// NextID reserves the next identifier in the monotonic ORD-NNN sequence.
func (r *InMemoryOrderRepository) NextID() (kernel.OrderID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := kernel.NewOrderID(r.nextSeq)
	if err != nil {
		return kernel.OrderID{}, err
	}
	r.nextSeq++
	return id, nil
}

// Add stores a new order.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order id: already exists")
	}

	r.orders[aggregate.ID()] = aggregate.Clone()
	r.seq = append(r.seq, aggregate.ID())
	return nil
}

// Update replaces the stored order that has the same id. There is no upsert:
// updating an unknown id is an ObjectNotFoundError.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.orders[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Get retrieves an order snapshot by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return stored.Clone(), nil
}

// GetAll retrieves snapshots of every order in insertion order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make([]*order.Order, 0, len(r.seq))
	for _, id := range r.seq {
		snapshots = append(snapshots, r.orders[id].Clone())
	}
	return snapshots, nil
}
