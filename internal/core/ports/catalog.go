package ports

import (
	"github.com/shopspring/decimal"
)

// MenuItem is the catalog's description of one dish, as consumed by the
// menu browsing view and the cart.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
}

// Catalog is the menu collaborator. The cart and the aggregation reporter
// depend only on this interface, never on catalog internals.
//
// Lookup methods return an ObjectNotFoundError for unknown item ids; callers
// holding references that should exist translate that into a data integrity
// failure.
type Catalog interface {
	// Items returns every catalog item in menu order.
	Items() []MenuItem

	// PriceOf returns the unit price of the item.
	PriceOf(itemID string) (decimal.Decimal, error)

	// NameOf returns the display name of the item.
	NameOf(itemID string) (string, error)

	// CategoryOf returns the category of the item, e.g. "mains".
	CategoryOf(itemID string) (string, error)
}
