package http

import (
	"sync"

	"resty/internal/core/domain/model/cart"
)

// CartRegistry keeps one cart per browsing session. Carts are created lazily
// on first access and live until the process exits; checkout clears a cart
// but does not remove it, so the same session can start a new order.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewCartRegistry creates an empty registry.
func NewCartRegistry() *CartRegistry {
	return &CartRegistry{carts: make(map[string]*cart.Cart)}
}

// Obtain returns the cart for the session, creating it on first access.
func (r *CartRegistry) Obtain(sessionID string) *cart.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.carts[sessionID]; ok {
		return existing
	}

	created := cart.NewCart()
	r.carts[sessionID] = created
	return created
}
