// Package cart provides the pre-checkout accumulation of menu selections for
// one customer session. A cart is an explicit ordered mapping from catalog
// item to quantity with defined add/remove/total operations, rather than ad
// hoc key deletion logic repeated at every call site.
package cart

import (
	"errors"

	"resty/internal/core/domain/model/order"
	"resty/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Catalog is the collaborator the cart prices its entries against.
// The cart depends only on this interface, never on catalog internals.
type Catalog interface {
	// PriceOf returns the current unit price of a catalog item.
	PriceOf(itemID string) (decimal.Decimal, error)

	// NameOf returns the display name of a catalog item.
	NameOf(itemID string) (string, error)
}

// Entry is one cart line: a catalog item identifier and its quantity.
// A retained entry always has quantity of at least 1.
type Entry struct {
	itemID   string
	quantity int
}

// ItemID returns the catalog item identifier.
func (e Entry) ItemID() string {
	return e.itemID
}

// Quantity returns how many units of the item are in the cart.
func (e Entry) Quantity() int {
	return e.quantity
}

// Cart accumulates menu selections for one active customer session.
// Entries keep the order in which items were first added, so checkout
// materializes line items in a stable, user-visible order.
//
// The cart never empties itself as a side effect of being read; only Clear,
// invoked by the caller completing checkout, discards its contents.
type Cart struct {
	id      uuid.UUID
	entries []Entry

	isConstructed bool
}

// NewCart creates an empty cart with a fresh session identifier.
func NewCart() *Cart {
	return &Cart{
		id:            uuid.New(),
		isConstructed: true,
	}
}

// Validate ensures the cart was created through the constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's session identifier.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// Add increments the quantity of the given item by 1, creating the entry at
// quantity 1 if it is not present yet.
func (c *Cart) Add(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	for i := range c.entries {
		if c.entries[i].itemID == itemID {
			c.entries[i].quantity++
			return nil
		}
	}

	c.entries = append(c.entries, Entry{itemID: itemID, quantity: 1})
	return nil
}

// Remove decrements the quantity of the given item by 1. When the quantity
// would drop to 0 the entry is deleted entirely: a cart never holds a zero or
// negative quantity. Removing an item that is not in the cart is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.entries {
		if c.entries[i].itemID != itemID {
			continue
		}
		if c.entries[i].quantity > 1 {
			c.entries[i].quantity--
			return
		}
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		return
	}
}

// Entries returns a copy of the cart's entries in first-added order.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// ItemCount returns the total number of units across all entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, entry := range c.entries {
		count += entry.quantity
	}
	return count
}

// Subtotal prices the cart against the catalog.
//
// Returns a DataIntegrityError if an entry references an item the catalog no
// longer knows — that indicates a stale cart after a catalog change and is
// surfaced, never auto-corrected.
func (c *Cart) Subtotal(catalog Catalog) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, entry := range c.entries {
		price, err := catalog.PriceOf(entry.itemID)
		if err != nil {
			return decimal.Zero, errs.NewDataIntegrityErrorWithCause("menuItemId", entry.itemID, err)
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(entry.quantity))))
	}
	return subtotal, nil
}

// ToLineItems materializes the cart into order line items for checkout,
// pricing and naming each entry from the catalog. The cart itself is left
// untouched; clearing is the explicit responsibility of the caller that
// completes the checkout.
func (c *Cart) ToLineItems(catalog Catalog) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(c.entries))
	for _, entry := range c.entries {
		price, err := catalog.PriceOf(entry.itemID)
		if err != nil {
			return nil, errs.NewDataIntegrityErrorWithCause("menuItemId", entry.itemID, err)
		}
		name, err := catalog.NameOf(entry.itemID)
		if err != nil {
			return nil, errs.NewDataIntegrityErrorWithCause("menuItemId", entry.itemID, err)
		}

		item, err := order.NewLineItem(entry.itemID, name, entry.quantity, price, "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear discards all entries. Called by the checkout flow once the order has
// been accepted by the store.
func (c *Cart) Clear() {
	c.entries = nil
}
