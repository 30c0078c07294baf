package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/cart"
	"github.com/example/morascent/internal/store"
)

// cartTokenHeader carries the shopper's cart token. A missing token on a
// mutation gets a fresh cart; the issued token rides back in the response.
const cartTokenHeader = "X-Cart-Token"

// CartHandler manages the pre-checkout cart.
type CartHandler struct {
	store *store.Store
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s}
}

func (h *CartHandler) token(c *fiber.Ctx) string {
	token := c.Get(cartTokenHeader)
	if token == "" {
		token = h.store.NewCartToken()
	}
	return token
}

func cartResponse(c *fiber.Ctx, token string, items interface{}, total float64) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"cart_token": token,
		"data": fiber.Map{
			"items": items,
			"total": total,
		},
	})
}

// GetCart returns the cart items and the drawer total.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	token := c.Get(cartTokenHeader)
	items, total := h.store.GetCart(token)
	return cartResponse(c, token, items, total)
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddItem merges a product into the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token := h.token(c)
	items, err := h.store.AddToCart(token, req.ProductID, req.Quantity)
	if err != nil {
		return mapStoreError(err)
	}

	return cartResponse(c, token, items, cart.Subtotal(items))
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateItem applies a quantity delta to a cart line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token := c.Get(cartTokenHeader)
	items, err := h.store.UpdateCartQuantity(token, id, req.Delta)
	if err != nil {
		return mapStoreError(err)
	}

	return cartResponse(c, token, items, cart.Subtotal(items))
}

// RemoveItem drops a product line from the cart.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	token := c.Get(cartTokenHeader)
	items, err := h.store.RemoveFromCart(token, id)
	if err != nil {
		return mapStoreError(err)
	}

	return cartResponse(c, token, items, cart.Subtotal(items))
}
