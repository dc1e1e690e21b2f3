package menu

import (
	"resty/internal/core/ports"
	"resty/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog implements the menu port with a fixed in-process item table.
// The table is immutable after construction, so lookups need no locking.
type Catalog struct {
	items []ports.MenuItem
	index map[string]ports.MenuItem
}

// NewCatalog creates a catalog over the given items in menu order.
func NewCatalog(items []ports.MenuItem) *Catalog {
	index := make(map[string]ports.MenuItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return &Catalog{items: items, index: index}
}

// NewDefaultCatalog creates a catalog seeded with the restaurant's menu.
func NewDefaultCatalog() *Catalog {
	return NewCatalog([]ports.MenuItem{
		{
			ID:          "1",
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon with seasonal vegetables",
			Price:       decimal.RequireFromString("28.99"),
			Category:    "mains",
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Truffle Pasta",
			Description: "Handmade pasta with black truffle and parmesan",
			Price:       decimal.RequireFromString("32.99"),
			Category:    "mains",
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "Tuna Tartare",
			Description: "Yellowfin tuna with avocado and citrus dressing",
			Price:       decimal.RequireFromString("18.99"),
			Category:    "appetizers",
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Wagyu Steak",
			Description: "Premium wagyu beef with truffle butter",
			Price:       decimal.RequireFromString("65.99"),
			Category:    "mains",
			Available:   false,
		},
		{
			ID:          "5",
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with vanilla ice cream",
			Price:       decimal.RequireFromString("12.99"),
			Category:    "desserts",
			Available:   true,
		},
		{
			ID:          "6",
			Name:        "Craft Coffee",
			Description: "Single-origin pour-over coffee",
			Price:       decimal.RequireFromString("4.99"),
			Category:    "beverages",
			Available:   true,
		},
	})
}

// Items returns every catalog item in menu order.
func (c *Catalog) Items() []ports.MenuItem {
	items := make([]ports.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// PriceOf returns the unit price of the item.
func (c *Catalog) PriceOf(itemID string) (decimal.Decimal, error) {
	item, exists := c.index[itemID]
	if !exists {
		return decimal.Decimal{}, errs.NewObjectNotFoundError("menu item", itemID)
	}
	return item.Price, nil
}

// NameOf returns the display name of the item.
func (c *Catalog) NameOf(itemID string) (string, error) {
	item, exists := c.index[itemID]
	if !exists {
		return "", errs.NewObjectNotFoundError("menu item", itemID)
	}
	return item.Name, nil
}

// CategoryOf returns the category of the item.
func (c *Catalog) CategoryOf(itemID string) (string, error) {
	item, exists := c.index[itemID]
	if !exists {
		return "", errs.NewObjectNotFoundError("menu item", itemID)
	}
	return item.Category, nil
}
