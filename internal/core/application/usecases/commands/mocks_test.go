package commands_test

import (
	"context"
	"time"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
	"resty/internal/core/domain/model/staff"
	"resty/internal/core/ports"
	"resty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func errNotOnMenu(itemID string) error {
	return errs.NewObjectNotFoundError("menu item", itemID)
}

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

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) List() []staff.Member {
	args := m.Called()
	return args.Get(0).([]staff.Member)
}

func (m *MockStaffDirectory) ByName(name string) (staff.Member, error) {
	args := m.Called(name)
	return args.Get(0).(staff.Member), args.Error(1)
}

// fixedClock returns the same instant on every call.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// priceTable is a minimal catalog stub for checkout tests.
type priceTable map[string]struct {
	name  string
	price string
}

func (p priceTable) PriceOf(itemID string) (decimal.Decimal, error) {
	entry, ok := p[itemID]
	if !ok {
		return decimal.Decimal{}, errNotOnMenu(itemID)
	}
	return decimal.RequireFromString(entry.price), nil
}

func (p priceTable) NameOf(itemID string) (string, error) {
	entry, ok := p[itemID]
	if !ok {
		return "", errNotOnMenu(itemID)
	}
	return entry.name, nil
}

func (p priceTable) CategoryOf(itemID string) (string, error) {
	if _, ok := p[itemID]; !ok {
		return "", errNotOnMenu(itemID)
	}
	return "mains", nil
}

func (p priceTable) Items() []ports.MenuItem {
	return nil
}
