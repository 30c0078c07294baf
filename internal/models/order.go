package models

import "time"

// Order statuses form a fixed set; orders are never deleted, only re-statused
// by admin action.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether s is a member of the status set.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Payment methods accepted at checkout.
const (
	PaymentCOD        = "cod"
	PaymentInstaPay   = "instapay"
	PaymentCreditCard = "credit_card"
)

// CustomerInfo is the checkout contact and delivery form. TransactionID is
// required only when PaymentMethod is instapay.
type CustomerInfo struct {
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone"`
	Country       string  `json:"country"`
	City          string  `json:"city"`
	Region        string  `json:"region"`
	StreetDetails string  `json:"street_details"`
	Notes         string  `json:"notes,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
}

// Order is an immutable-once-placed checkout record with a mutable status.
// ID is a short human-presentable code such as MRA-428117.
type Order struct {
	ID              string       `json:"id"`
	PlacedAt        time.Time    `json:"placed_at"`
	Items           []CartItem   `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	Discount        float64      `json:"discount"`
	ShippingCost    float64      `json:"shipping_cost"`
	Total           float64      `json:"total"`
	Customer        CustomerInfo `json:"customer"`
	Status          string       `json:"status"`
	CouponCode      string       `json:"coupon_code,omitempty"`
	ShippingCompany string       `json:"shipping_company,omitempty"`
	TrackingNumber  string       `json:"tracking_number,omitempty"`
}

// Customer aggregates a purchaser's history, keyed by phone number.
type Customer struct {
	BaseModel
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone"`
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
	IsBlocked  bool    `json:"is_blocked"`
	Notes      string  `json:"notes"`
}
