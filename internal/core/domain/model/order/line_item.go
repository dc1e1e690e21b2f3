package order

import (
	"errors"
	"fmt"

	"resty/internal/pkg/errs"
	"resty/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one entry within an order: a catalog item, a quantity, and an
// optional preparation note. Line items are immutable once attached to an
// order; the order total is always the sum of their line totals.
type LineItem struct {
	itemID    string
	name      string
	quantity  int
	unitPrice decimal.Decimal
	notes     string

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation. The catalog item id and
// name must be non-empty, quantity must be at least 1, and the unit price
// must not be negative.
func NewLineItem(itemID, name string, quantity int, unitPrice decimal.Decimal, notes string) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.notes = notes
	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ItemID returns the catalog item identifier this line refers to.
// It is retained so reporting can classify line items by catalog category.
func (li LineItem) ItemID() string {
	return li.itemID
}

// Name returns the dish name as it appeared on the menu at checkout.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns how many units were ordered. Always at least 1.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit at checkout.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Notes returns the optional preparation note, e.g. "Medium rare".
func (li LineItem) Notes() string {
	return li.notes
}

// LineTotal returns quantity × unit price.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("line item catalog id")
	}
	li.itemID = itemID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}
