package commands_test

import (
	"errors"
	"testing"
	"time"

	"resty/internal/core/application/usecases/commands"
	"resty/internal/core/domain/model/cart"
	"resty/internal/core/domain/model/kernel"
	"resty/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createMenu() priceTable {
	return priceTable{
		"1": {name: "Grilled Salmon", price: "28.99"},
		"6": {name: "Craft Coffee", price: "4.99"},
	}
}

func createCart(t *testing.T, itemIDs ...string) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	for _, itemID := range itemIDs {
		require.NoError(t, c.Add(itemID))
	}
	return c
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	sessionCart := createCart(t, "1", "6", "6")

	cmd, err := commands.NewCheckoutCommand(sessionCart, "John Doe", 12, "Nut allergy")
	require.NoError(t, err)

	id, err := kernel.NewOrderID(1)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("NextID").Return(id, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewCheckoutCommandHandler(repo, createMenu(), fixedClock{now})
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, "ORD-001", placed.ID().String())
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, now, placed.OrderTime())
	assert.Equal(t, now.Add(45*time.Minute), placed.EstimatedReadyTime())
	assert.True(t, placed.Total().Equal(decimal.RequireFromString("38.97")),
		"expected 38.97, got %s", placed.Total())
	assert.Equal(t, "Nut allergy", placed.SpecialRequests())

	// Cart is cleared only after the store accepted the order.
	assert.True(t, sessionCart.IsEmpty())
	repo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewCheckoutCommandHandler(repo, createMenu(), fixedClock{time.Now()})

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	sessionCart := createCart(t, "1")

	cmd, err := commands.NewCheckoutCommand(sessionCart, "John Doe", 12, "")
	require.NoError(t, err)

	id, err := kernel.NewOrderID(1)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("NextID").Return(id, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
	)

	h := commands.NewCheckoutCommandHandler(repo, createMenu(), fixedClock{time.Now()})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	// A failed checkout leaves the cart intact.
	assert.Equal(t, 1, sessionCart.ItemCount())
	repo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_StaleCartItem(t *testing.T) {
	ctx := t.Context()
	sessionCart := createCart(t, "99")

	cmd, err := commands.NewCheckoutCommand(sessionCart, "John Doe", 12, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	h := commands.NewCheckoutCommandHandler(repo, createMenu(), fixedClock{time.Now()})

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, 1, sessionCart.ItemCount())
	repo.AssertNotCalled(t, "NextID")
}

func TestNewCheckoutCommand_Validation(t *testing.T) {
	t.Run("should reject nil cart", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(nil, "John Doe", 12, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCartIsRequired)
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(cart.NewCart(), "John Doe", 12, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
	})

	t.Run("should reject empty customer name", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(createCart(t, "1"), "", 12, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCustomerIsRequired)
	})

	t.Run("should reject non-positive table number", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(createCart(t, "1"), "John Doe", 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrTableIsInvalid)
	})
}
