package queries_test

import (
	"context"
	"testing"
	"time"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID() (kernel.OrderID, error) {
	args := m.Called()
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// fixedClock returns the same instant on every call.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// Test helper functions.
func createOrder(t *testing.T, seq int, customerName string, status order.Status, orderTime time.Time) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)

	item, err := order.NewLineItem("1", "Grilled Salmon", 1, decimal.RequireFromString("28.99"), "")
	require.NoError(t, err)

	o, err := order.NewOrder(id, customerName, seq, []order.LineItem{item}, "", orderTime)
	require.NoError(t, err)

	for o.Status() != status {
		o.Advance(orderTime)
	}
	return o
}
