package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/pricing"
	"github.com/example/morascent/internal/store"
)

// CheckoutHandler exposes the pricing quote and the order submission.
type CheckoutHandler struct {
	store *store.Store
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(s *store.Store) *CheckoutHandler {
	return &CheckoutHandler{store: s}
}

type quoteRequest struct {
	CouponCode string `json:"coupon_code"`
	City       string `json:"city"`
}

// couponErrorCode returns the inline error identifier the checkout form
// renders next to the coupon field.
func couponErrorCode(err error) string {
	switch {
	case errors.Is(err, pricing.ErrCouponBelowMinimum):
		return "below_minimum"
	case errors.Is(err, pricing.ErrCouponExhausted):
		return "exhausted"
	case errors.Is(err, pricing.ErrCouponInvalid):
		return "invalid_code"
	default:
		return ""
	}
}

// Quote prices the current cart for a destination city and optional coupon.
// Nothing is mutated; a coupon problem is inline data, not a request failure,
// so the form can keep the order intact while showing the message.
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token := c.Get(cartTokenHeader)
	quote, items, err := h.store.QuoteCart(token, req.CouponCode, req.City)
	if err != nil {
		return mapStoreError(err)
	}

	data := fiber.Map{
		"items":          items,
		"subtotal":       quote.Subtotal,
		"discount":       quote.Discount,
		"shipping_cost":  quote.ShippingCost,
		"total":          quote.Total,
		"coupon_applied": quote.Coupon != nil,
	}
	if quote.CouponErr != nil {
		data["coupon_error"] = couponErrorCode(quote.CouponErr)
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

type checkoutRequest struct {
	CouponCode string              `json:"coupon_code"`
	Customer   models.CustomerInfo `json:"customer"`
}

// Submit places the order from the cart. Coupon problems block here, unlike
// on the quote endpoint, because a submitted order must match its quote.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	info := req.Customer
	if info.Name == "" || info.Phone == "" || info.Region == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, phone and region are required")
	}
	if info.PaymentMethod == "" {
		info.PaymentMethod = models.PaymentCOD
	}
	if info.Country == "" {
		info.Country = h.store.Countries()[0]
	}

	token := c.Get(cartTokenHeader)
	order, err := h.store.SubmitOrder(token, req.CouponCode, info)
	if err != nil {
		if code := couponErrorCode(err); code != "" {
			return fiber.NewError(fiber.StatusBadRequest, "coupon rejected: "+code)
		}
		return mapStoreError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}
