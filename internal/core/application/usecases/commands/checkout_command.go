package commands

import (
	"errors"

	"resty/internal/core/domain/model/cart"
	"resty/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsRequired     = errors.New("cart is required")
	ErrCartIsEmpty        = errors.New("cart must contain at least one item")
	ErrCustomerIsRequired = errors.New("customer name is required")
	ErrTableIsInvalid     = errors.New("table number must be greater than 0")
)

// CheckoutCommand represents a request to convert a session cart into a new
// order. Encapsulates the cart snapshot together with the customer details
// collected at checkout.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(sessionCart, "John Doe", 12, "Customer has nut allergy")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(repo, catalog, clock)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed for table %d", placed.ID(), placed.TableNumber())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cart            *cart.Cart
	customerName    string
	tableNumber     int
	specialRequests string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order from a cart.
// Validates that the cart exists and is non-empty, the customer name is not
// empty, and the table number is positive.
func NewCheckoutCommand(
	sessionCart *cart.Cart,
	customerName string,
	tableNumber int,
	specialRequests string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCart(sessionCart),
		checkoutCommand.setCustomerName(customerName),
		checkoutCommand.setTableNumber(tableNumber),
	); err != nil {
		return CheckoutCommand{}, err
	}

	checkoutCommand.specialRequests = specialRequests
	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Cart returns the session cart being checked out.
func (c CheckoutCommand) Cart() *cart.Cart {
	return c.cart
}

// CustomerName returns the name the order is placed under.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// TableNumber returns the table the order will be served at.
func (c CheckoutCommand) TableNumber() int {
	return c.tableNumber
}

// SpecialRequests returns the optional free-form note for the kitchen.
func (c CheckoutCommand) SpecialRequests() string {
	return c.specialRequests
}

func (c *CheckoutCommand) setCart(sessionCart *cart.Cart) error {
	if err := sessionCart.Validate(); err != nil {
		return ErrCartIsRequired
	}
	if sessionCart.IsEmpty() {
		return ErrCartIsEmpty
	}
	c.cart = sessionCart
	return nil
}

func (c *CheckoutCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerIsRequired
	}
	c.customerName = customerName
	return nil
}

func (c *CheckoutCommand) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return ErrTableIsInvalid
	}
	c.tableNumber = tableNumber
	return nil
}
