package http

import (
	"github.com/shopspring/decimal"
)

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItemResponse describes one dish of the menu.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

// StaffMemberResponse describes one staff member of the roster.
type StaffMemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AddCartItemRequest adds one unit of a menu item to the session cart.
type AddCartItemRequest struct {
	MenuItemID string `json:"menuItemId"`
}

// CartEntryResponse is one cart line with its catalog-derived display data.
type CartEntryResponse struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// CartResponse is the session cart view.
type CartResponse struct {
	SessionID string              `json:"sessionId"`
	Entries   []CartEntryResponse `json:"entries"`
	ItemCount int                 `json:"itemCount"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
}

// CheckoutRequest converts the session cart into an order.
type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	TableNumber     int    `json:"tableNumber"`
	SpecialRequests string `json:"specialRequests"`
}

// CheckoutResponse acknowledges a placed order.
type CheckoutResponse struct {
	OrderID            string `json:"orderId"`
	Status             string `json:"status"`
	EstimatedReadyTime string `json:"estimatedReadyTime"`
}

// UpdateOrderStatusRequest sets an order to an explicit pipeline status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignStaffRequest assigns a staff member to an order by display name.
type AssignStaffRequest struct {
	StaffName string `json:"staffName"`
}
