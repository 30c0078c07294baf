// Package cart implements the pre-checkout selection of products. A cart
// holds at most one line per product id; adding a product that is already
// present increments its quantity instead of duplicating the line.
package cart

import "github.com/example/morascent/internal/models"

// Cart is an ordered list of cart items.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// Add merges a product into the cart with the given quantity (minimum 1).
// The stored item is a snapshot of the product at the time it was added.
func (c *Cart) Add(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{Product: p, Quantity: quantity})
}

// UpdateQuantity applies a delta to the item with the given product id,
// flooring the result at 1. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID int64, delta int) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			return
		}
	}
}

// Remove drops the item with the given product id, if present.
func (c *Cart) Remove(productID int64) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Count returns the total quantity across all items.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Subtotal sums price times quantity over all items. The checkout pricing
// uses this same function, so the drawer total and the quote subtotal can
// never disagree.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}
