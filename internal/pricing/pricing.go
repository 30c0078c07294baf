// Package pricing computes the checkout price breakdown. Quote is a pure
// function of the cart, the coupon registry and the shipping-zone table; it
// never mutates either. Coupon usage counters move only when the store
// records a submitted order.
package pricing

import (
	"errors"
	"strings"

	"github.com/example/morascent/internal/cart"
	"github.com/example/morascent/internal/models"
)

// Coupon resolution failures. These are inline, non-blocking at quote time;
// the order submission path refuses to proceed while one is present.
var (
	ErrCouponInvalid      = errors.New("invalid coupon code")
	ErrCouponBelowMinimum = errors.New("order below coupon minimum")
	ErrCouponExhausted    = errors.New("coupon usage limit reached")
)

// Quote is the deterministic price breakdown for a cart, destination and
// optional coupon code.
type Quote struct {
	Subtotal     float64        `json:"subtotal"`
	Discount     float64        `json:"discount"`
	ShippingCost float64        `json:"shipping_cost"`
	Total        float64        `json:"total"`
	Coupon       *models.Coupon `json:"coupon,omitempty"`
	CouponErr    error          `json:"-"`
}

// Compute resolves the full breakdown: subtotal, coupon discount, shipping
// rate for the destination city, and the final total. An empty couponCode
// means no coupon was attempted: no lookup runs and CouponErr stays nil, so
// clearing an applied coupon and recomputing is identical to never having
// applied it.
//
// A fixed-amount discount is deliberately not clamped to the subtotal; a
// coupon worth more than the cart surfaces as-is in the arithmetic.
func Compute(items []models.CartItem, couponCode, city string, coupons []models.Coupon, zones []models.ShippingZone) Quote {
	q := Quote{Subtotal: cart.Subtotal(items)}

	if code := strings.TrimSpace(couponCode); code != "" {
		coupon, err := resolveCoupon(code, q.Subtotal, coupons)
		if err != nil {
			q.CouponErr = err
		} else {
			q.Coupon = coupon
			q.Discount = discountFor(*coupon, q.Subtotal)
		}
	}

	q.ShippingCost = shippingRate(city, zones)
	q.Total = q.Subtotal - q.Discount + q.ShippingCost
	return q
}

func resolveCoupon(code string, subtotal float64, coupons []models.Coupon) (*models.Coupon, error) {
	for i := range coupons {
		c := coupons[i]
		if !c.IsActive || !strings.EqualFold(c.Code, code) {
			continue
		}
		if subtotal < c.MinOrderValue {
			return nil, ErrCouponBelowMinimum
		}
		if c.Exhausted() {
			return nil, ErrCouponExhausted
		}
		return &c, nil
	}
	return nil, ErrCouponInvalid
}

func discountFor(c models.Coupon, subtotal float64) float64 {
	var d float64
	switch c.DiscountType {
	case models.DiscountPercentage:
		d = subtotal * c.DiscountValue / 100
	case models.DiscountFixed:
		d = c.DiscountValue
	}
	if d < 0 {
		return 0
	}
	return d
}

func shippingRate(city string, zones []models.ShippingZone) float64 {
	for _, z := range zones {
		if z.IsActive && z.City == city {
			return z.Rate
		}
	}
	return 0
}
