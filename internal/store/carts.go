package store

import (
	"github.com/google/uuid"

	"github.com/example/morascent/internal/cart"
	"github.com/example/morascent/internal/models"
)

// NewCartToken issues a token for a fresh, empty cart.
func (s *Store) NewCartToken() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[token] = &cart.Cart{}
	return token
}

// GetCart returns a copy of the cart items for the given token together with
// the drawer total. An unknown token is simply an empty cart.
func (s *Store) GetCart(token string) ([]models.CartItem, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[token]
	if !ok {
		return nil, 0
	}
	items := append([]models.CartItem(nil), c.Items...)
	return items, cart.Subtotal(items)
}

// AddToCart snapshots the product into the token's cart, merging with an
// existing line for the same product.
func (s *Store) AddToCart(token string, productID int64, quantity int) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findProduct(productID)
	if err != nil {
		return nil, err
	}

	c, ok := s.carts[token]
	if !ok {
		c = &cart.Cart{}
		s.carts[token] = c
	}
	c.Add(p, quantity)
	return append([]models.CartItem(nil), c.Items...), nil
}

// UpdateCartQuantity applies a quantity delta to a cart line, floored at 1.
func (s *Store) UpdateCartQuantity(token string, productID int64, delta int) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[token]
	if !ok {
		return nil, ErrNotFound
	}
	c.UpdateQuantity(productID, delta)
	return append([]models.CartItem(nil), c.Items...), nil
}

// RemoveFromCart drops a product line from the cart.
func (s *Store) RemoveFromCart(token string, productID int64) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[token]
	if !ok {
		return nil, ErrNotFound
	}
	c.Remove(productID)
	return append([]models.CartItem(nil), c.Items...), nil
}
