package order_test

import (
	"errors"
	"testing"
	"time"

	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"
	"resty/internal/core/domain/model/staff"
	"resty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidOrderID(t *testing.T, seq int) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)
	return id
}

func createValidLineItem(t *testing.T, itemID, name string, quantity int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(itemID, name, quantity, decimal.RequireFromString(price), "")
	require.NoError(t, err)
	return item
}

func createValidOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	items := []order.LineItem{
		createValidLineItem(t, "1", "Grilled Salmon", 1, "28.99"),
		createValidLineItem(t, "6", "Craft Coffee", 2, "4.99"),
	}

	o, err := order.NewOrder(createValidOrderID(t, 1), "John Doe", 12, items, "", now)
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createValidMember(t *testing.T) staff.Member {
	t.Helper()
	member, err := staff.NewMember("chef1", "Chef Maria", staff.Chef)
	require.NoError(t, err)
	return member
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		o := createValidOrder(t, now)

		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-001", o.ID().String())
		assert.Equal(t, "John Doe", o.CustomerName())
		assert.Equal(t, 12, o.TableNumber())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.OrderTime())
		assert.Len(t, o.Items(), 2)
		assert.Nil(t, o.AssignedStaff())
	})

	t.Run("should total one salmon and two coffees to 38.97", func(t *testing.T) {
		o := createValidOrder(t, now)

		assert.True(t, o.Total().Equal(decimal.RequireFromString("38.97")),
			"expected 38.97, got %s", o.Total())
	})

	t.Run("should estimate ready time 45 minutes out", func(t *testing.T) {
		o := createValidOrder(t, now)

		assert.Equal(t, now.Add(45*time.Minute), o.EstimatedReadyTime())
	})

	t.Run("should return error for empty customer name", func(t *testing.T) {
		items := []order.LineItem{createValidLineItem(t, "1", "Grilled Salmon", 1, "28.99")}

		o, err := order.NewOrder(createValidOrderID(t, 1), "", 12, items, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("should return error for non-positive table number", func(t *testing.T) {
		items := []order.LineItem{createValidLineItem(t, "1", "Grilled Salmon", 1, "28.99")}

		for _, tableNumber := range []int{0, -3} {
			o, err := order.NewOrder(createValidOrderID(t, 1), "John Doe", tableNumber, items, "", now)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "table number")
		}
	})

	t.Run("should return error for empty items", func(t *testing.T) {
		o, err := order.NewOrder(createValidOrderID(t, 1), "John Doe", 12, nil, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should return error for unconstructed line item", func(t *testing.T) {
		items := []order.LineItem{{}}

		o, err := order.NewOrder(createValidOrderID(t, 1), "John Doe", 12, items, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), order.ErrLineItemIsNotConstructed.Error())
	})

	t.Run("should return error for invalid order id", func(t *testing.T) {
		items := []order.LineItem{createValidLineItem(t, "1", "Grilled Salmon", 1, "28.99")}
		var invalidID kernel.OrderID

		o, err := order.NewOrder(invalidID, "John Doe", 12, items, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should copy items so caller mutation does not leak in", func(t *testing.T) {
		items := []order.LineItem{
			createValidLineItem(t, "1", "Grilled Salmon", 1, "28.99"),
		}

		o, err := order.NewOrder(createValidOrderID(t, 1), "John Doe", 12, items, "", now)
		require.NoError(t, err)

		items[0] = createValidLineItem(t, "6", "Craft Coffee", 9, "4.99")
		assert.Equal(t, "Grilled Salmon", o.Items()[0].Name())
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAdvance(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("should walk the full pipeline", func(t *testing.T) {
		o := createValidOrder(t, now)

		o.Advance(now)
		assert.Equal(t, order.Preparing, o.Status())

		o.Advance(now)
		assert.Equal(t, order.Ready, o.Status())

		o.Advance(now)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should be a no-op at served", func(t *testing.T) {
		o := createValidOrder(t, now)
		for range 3 {
			o.Advance(now)
		}
		require.Equal(t, order.Served, o.Status())
		eta := o.EstimatedReadyTime()

		o.Advance(now.Add(time.Hour))
		o.Advance(now.Add(2 * time.Hour))

		assert.Equal(t, order.Served, o.Status())
		assert.Equal(t, eta, o.EstimatedReadyTime())
	})

	t.Run("should recompute estimate when preparation starts", func(t *testing.T) {
		o := createValidOrder(t, now)
		pickedUp := now.Add(10 * time.Minute)

		o.Advance(pickedUp)

		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, pickedUp.Add(30*time.Minute), o.EstimatedReadyTime())
	})

	t.Run("should not touch estimate after preparing", func(t *testing.T) {
		o := createValidOrder(t, now)
		o.Advance(now)
		eta := o.EstimatedReadyTime()

		o.Advance(now.Add(20 * time.Minute))

		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, eta, o.EstimatedReadyTime())
	})
}

func TestOrderChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("should accept the legal successor", func(t *testing.T) {
		o := createValidOrder(t, now)

		require.NoError(t, o.ChangeStatus(order.Preparing, now))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, now.Add(30*time.Minute), o.EstimatedReadyTime())
	})

	t.Run("should reject skipping and leave the order unchanged", func(t *testing.T) {
		o := createValidOrder(t, now)
		eta := o.EstimatedReadyTime()

		err := o.ChangeStatus(order.Served, now)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, eta, o.EstimatedReadyTime())
	})

	t.Run("should reject regressing", func(t *testing.T) {
		o := createValidOrder(t, now)
		require.NoError(t, o.ChangeStatus(order.Preparing, now))

		err := o.ChangeStatus(order.Pending, now)

		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrderAssignStaff(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("should assign staff in any state prior to served", func(t *testing.T) {
		o := createValidOrder(t, now)
		member := createValidMember(t)

		require.NoError(t, o.AssignStaff(member))
		require.NotNil(t, o.AssignedStaff())
		assert.Equal(t, "Chef Maria", o.AssignedStaff().Name())
	})

	t.Run("should overwrite previous assignee", func(t *testing.T) {
		o := createValidOrder(t, now)
		require.NoError(t, o.AssignStaff(createValidMember(t)))

		server, err := staff.NewMember("server1", "Server Tom", staff.Server)
		require.NoError(t, err)
		require.NoError(t, o.AssignStaff(server))

		assert.Equal(t, "Server Tom", o.AssignedStaff().Name())
	})

	t.Run("should reject assignment to a served order", func(t *testing.T) {
		o := createValidOrder(t, now)
		for range 3 {
			o.Advance(now)
		}
		require.Equal(t, order.Served, o.Status())

		err := o.AssignStaff(createValidMember(t))

		require.Error(t, err)
		assert.Nil(t, o.AssignedStaff())
	})

	t.Run("should reject unconstructed member", func(t *testing.T) {
		o := createValidOrder(t, now)

		err := o.AssignStaff(staff.Member{})

		require.Error(t, err)
		assert.Nil(t, o.AssignedStaff())
	})
}

func TestOrderClone(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("should be a deep value copy", func(t *testing.T) {
		o := createValidOrder(t, now)
		require.NoError(t, o.AssignStaff(createValidMember(t)))

		clone := o.Clone()

		require.NoError(t, clone.Validate())
		assert.True(t, o.IsEqual(clone))
		assert.Equal(t, o.Status(), clone.Status())
		assert.Equal(t, o.Items(), clone.Items())
		assert.Equal(t, o.AssignedStaff().Name(), clone.AssignedStaff().Name())
	})

	t.Run("should not observe later mutations of the original", func(t *testing.T) {
		o := createValidOrder(t, now)
		clone := o.Clone()

		o.Advance(now)

		assert.Equal(t, order.Pending, clone.Status())
		assert.Equal(t, order.Preparing, o.Status())
	})
}
