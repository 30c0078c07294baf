package models

import "time"

// Discount types supported by coupons.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code with eligibility and usage constraints.
// UsageCount is monotonically non-decreasing and must never pass UsageLimit;
// the store increments it only at order submission.
type Coupon struct {
	BaseModel
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	MinOrderValue float64   `json:"min_order_value"`
	ExpiryDate    time.Time `json:"expiry_date"`
	UsageLimit    int       `json:"usage_limit"`
	UsageCount    int       `json:"usage_count"`
	IsActive      bool      `json:"is_active"`
}

// Exhausted reports whether the coupon has reached its usage limit.
func (c Coupon) Exhausted() bool {
	return c.UsageCount >= c.UsageLimit
}
