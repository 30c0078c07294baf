package store

import (
	"strings"
	"time"

	"github.com/nanorand/nanorand"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/pricing"
)

// SubmitOrder places an order from the token's cart: it re-runs pricing under
// the lock, records the order newest-first, advances the applied coupon's
// usage counter by exactly one, upserts the customer aggregate keyed by phone,
// decrements stock and clears the cart. No partial application is ever
// visible: every precondition is checked before the first mutation.
func (s *Store) SubmitOrder(token, couponCode string, info models.CustomerInfo) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[token]
	if !ok || len(c.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	if info.PaymentMethod == models.PaymentInstaPay && strings.TrimSpace(info.TransactionID) == "" {
		return models.Order{}, ErrTransactionIDRequired
	}

	if cust := s.findCustomerByPhone(info.Phone); cust != nil && cust.IsBlocked {
		return models.Order{}, ErrCustomerBlocked
	}

	items := append([]models.CartItem(nil), c.Items...)
	quote := pricing.Compute(items, couponCode, info.City, s.coupons, s.zones)
	if quote.CouponErr != nil {
		return models.Order{}, quote.CouponErr
	}

	code, err := s.newOrderCode()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:           code,
		PlacedAt:     time.Now(),
		Items:        items,
		Subtotal:     quote.Subtotal,
		Discount:     quote.Discount,
		ShippingCost: quote.ShippingCost,
		Total:        quote.Total,
		Customer:     info,
		Status:       models.OrderStatusNew,
	}
	if quote.Coupon != nil {
		order.CouponCode = quote.Coupon.Code
	}

	// Newest-first ordering is an observable contract for both the admin
	// dashboard and the shopper's own order list.
	s.orders = append([]models.Order{order}, s.orders...)

	if quote.Coupon != nil {
		for i := range s.coupons {
			if s.coupons[i].ID == quote.Coupon.ID {
				s.coupons[i].UsageCount++
				break
			}
		}
	}

	s.upsertCustomer(info, order.Total)

	for _, item := range items {
		for i := range s.products {
			if s.products[i].ID == item.ID {
				stock := s.products[i].Stock - item.Quantity
				if stock < 0 {
					stock = 0
				}
				s.products[i].Stock = stock
				break
			}
		}
	}

	c.Clear()
	return order, nil
}

// QuoteCart prices the token's cart without mutating anything. Trial coupon
// application is free; usage counters move only in SubmitOrder.
func (s *Store) QuoteCart(token, couponCode, city string) (pricing.Quote, []models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[token]
	if !ok || len(c.Items) == 0 {
		return pricing.Quote{}, nil, ErrCartEmpty
	}

	items := append([]models.CartItem(nil), c.Items...)
	return pricing.Compute(items, couponCode, city, s.coupons, s.zones), items, nil
}

func (s *Store) newOrderCode() (string, error) {
	for {
		digits, err := nanorand.Gen(6)
		if err != nil {
			return "", err
		}
		code := "MRA-" + digits
		if s.findOrder(code) == nil {
			return code, nil
		}
	}
}

func (s *Store) findOrder(id string) *models.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

// ListOrders returns all orders newest-first, optionally filtered by status.
func (s *Store) ListOrders(status string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ListOrdersByEmail returns the orders placed under an email, newest-first.
func (s *Store) ListOrdersByEmail(email string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if strings.EqualFold(o.Customer.Email, email) {
			out = append(out, o)
		}
	}
	return out
}

// ListOrdersByPhone returns the orders placed under a phone number,
// newest-first. The admin customer view uses this to show purchase history.
func (s *Store) ListOrdersByPhone(phone string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.Customer.Phone == phone {
			out = append(out, o)
		}
	}
	return out
}

// GetOrder returns a single order by its code.
func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if o := s.findOrder(id); o != nil {
		return *o, nil
	}
	return models.Order{}, ErrNotFound
}

// UpdateOrderStatus moves an order to a new status. Carrier and tracking
// details are accepted alongside the processing and shipped transitions.
// Orders are never deleted, only re-statused.
func (s *Store) UpdateOrderStatus(id, status, shippingCompany, trackingNumber string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.findOrder(id)
	if o == nil {
		return models.Order{}, ErrNotFound
	}

	o.Status = status
	if status == models.OrderStatusProcessing || status == models.OrderStatusShipped {
		if shippingCompany != "" {
			o.ShippingCompany = shippingCompany
		}
		if trackingNumber != "" {
			o.TrackingNumber = trackingNumber
		}
	}
	return *o, nil
}
