package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/pricing"
	"github.com/example/morascent/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New("secret123")
	require.NoError(t, err)
	return s
}

func customerInfo(phone string) models.CustomerInfo {
	return models.CustomerInfo{
		Name:          "أحمد محمد",
		Email:         "ahmed@example.com",
		Phone:         phone,
		Country:       "مصر",
		City:          "القاهرة",
		Region:        "مدينة نصر",
		StreetDetails: "شارع عباس العقاد",
		PaymentMethod: models.PaymentCOD,
	}
}

// The seeded Nishane Hacivat (id 8) costs 1150 with stock 15; MORA10 is 10%
// off above 500 with limit 100; Cairo ships at 50.
func TestSubmitOrderEndToEnd(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 8, 1)
	require.NoError(t, err)

	order, err := s.SubmitOrder(token, "MORA10", customerInfo("+201000000001"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "MRA-"))
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, 1150.0, order.Subtotal)
	assert.Equal(t, 115.0, order.Discount)
	assert.Equal(t, 50.0, order.ShippingCost)
	assert.Equal(t, 1085.0, order.Total)
	assert.Equal(t, "MORA10", order.CouponCode)

	// Coupon usage advanced by exactly one.
	for _, c := range s.ListCoupons() {
		if c.Code == "MORA10" {
			assert.Equal(t, 1, c.UsageCount)
		}
	}

	// Customer aggregate created.
	customers := s.ListCustomers()
	require.Len(t, customers, 1)
	assert.Equal(t, 1, customers[0].OrderCount)
	assert.Equal(t, 1085.0, customers[0].TotalSpent)
	assert.Equal(t, "+201000000001", customers[0].Phone)

	// Stock decremented, cart cleared.
	p, err := s.GetProduct(8)
	require.NoError(t, err)
	assert.Equal(t, 14, p.Stock)

	items, total := s.GetCart(token)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestQuoteBelowMinimumIsInlineNotBlocking(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 10, 1) // 320, below MORA10's 500 minimum
	require.NoError(t, err)

	quote, _, err := s.QuoteCart(token, "MORA10", "القاهرة")
	require.NoError(t, err)

	assert.ErrorIs(t, quote.CouponErr, pricing.ErrCouponBelowMinimum)
	assert.Zero(t, quote.Discount)
	assert.Equal(t, 370.0, quote.Total) // subtotal + shipping

	// The order stays unaffected: no usage moved, cart intact.
	for _, c := range s.ListCoupons() {
		if c.Code == "MORA10" {
			assert.Zero(t, c.UsageCount)
		}
	}
	items, _ := s.GetCart(token)
	assert.Len(t, items, 1)
}

func TestSubmitBlocksOnCouponError(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 10, 1)
	require.NoError(t, err)

	_, err = s.SubmitOrder(token, "MORA10", customerInfo("+201000000002"))
	assert.ErrorIs(t, err, pricing.ErrCouponBelowMinimum)
	assert.Empty(t, s.ListOrders(""))
}

func TestInstaPayRequiresTransactionID(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 8, 1)
	require.NoError(t, err)

	info := customerInfo("+201000000003")
	info.PaymentMethod = models.PaymentInstaPay
	info.TransactionID = ""

	_, err = s.SubmitOrder(token, "", info)
	assert.ErrorIs(t, err, store.ErrTransactionIDRequired)

	// No order, no customer, cart untouched.
	assert.Empty(t, s.ListOrders(""))
	assert.Empty(t, s.ListCustomers())
	items, _ := s.GetCart(token)
	assert.Len(t, items, 1)

	// Supplying the id lets the same submission through.
	info.TransactionID = "TXN-889944"
	order, err := s.SubmitOrder(token, "", info)
	require.NoError(t, err)
	assert.Equal(t, "TXN-889944", order.Customer.TransactionID)
}

func TestExhaustedCouponLeavesUsageUnchanged(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateCoupon(models.Coupon{
		Code:          "ONCE",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 50,
		UsageLimit:    1,
		IsActive:      true,
	})
	require.NoError(t, err)

	token := s.NewCartToken()
	_, err = s.AddToCart(token, 8, 1)
	require.NoError(t, err)
	_, err = s.SubmitOrder(token, "ONCE", customerInfo("+201000000004"))
	require.NoError(t, err)

	_, err = s.AddToCart(token, 8, 1)
	require.NoError(t, err)
	_, err = s.SubmitOrder(token, "ONCE", customerInfo("+201000000004"))
	assert.ErrorIs(t, err, pricing.ErrCouponExhausted)

	for _, c := range s.ListCoupons() {
		if c.Code == "ONCE" {
			assert.Equal(t, 1, c.UsageCount)
		}
	}
	assert.Len(t, s.ListOrders(""), 1)
}

func TestOrdersListNewestFirst(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	for i := 0; i < 2; i++ {
		_, err := s.AddToCart(token, 9, 1)
		require.NoError(t, err)
		_, err = s.SubmitOrder(token, "", customerInfo("+201000000005"))
		require.NoError(t, err)
	}

	orders := s.ListOrders("")
	require.Len(t, orders, 2)
	assert.True(t, !orders[0].PlacedAt.Before(orders[1].PlacedAt))

	// The shopper's own list shares the ordering.
	mine := s.ListOrdersByEmail("ahmed@example.com")
	require.Len(t, mine, 2)
	assert.Equal(t, orders[0].ID, mine[0].ID)
}

func TestCustomerUpsertAcrossOrders(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 9, 1) // 850
	require.NoError(t, err)
	first, err := s.SubmitOrder(token, "", customerInfo("+201000000006"))
	require.NoError(t, err)

	_, err = s.AddToCart(token, 10, 1) // 320
	require.NoError(t, err)
	second, err := s.SubmitOrder(token, "", customerInfo("+201000000006"))
	require.NoError(t, err)

	customers := s.ListCustomers()
	require.Len(t, customers, 1)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.Equal(t, first.Total+second.Total, customers[0].TotalSpent)

	history := s.ListOrdersByPhone("+201000000006")
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
}

func TestBlockedCustomerCannotOrder(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 9, 1)
	require.NoError(t, err)
	_, err = s.SubmitOrder(token, "", customerInfo("+201000000007"))
	require.NoError(t, err)

	customers := s.ListCustomers()
	require.Len(t, customers, 1)
	_, err = s.UpdateCustomer(customers[0].ID, "repeated refusals", true)
	require.NoError(t, err)
	assert.True(t, s.IsBlocked("+201000000007"))

	_, err = s.AddToCart(token, 9, 1)
	require.NoError(t, err)
	_, err = s.SubmitOrder(token, "", customerInfo("+201000000007"))
	assert.ErrorIs(t, err, store.ErrCustomerBlocked)
	assert.Len(t, s.ListOrders(""), 1)
}

func TestSubmitEmptyCart(t *testing.T) {
	s := newStore(t)

	_, err := s.SubmitOrder(s.NewCartToken(), "", customerInfo("+201000000008"))
	assert.ErrorIs(t, err, store.ErrCartEmpty)

	_, err = s.SubmitOrder("unknown-token", "", customerInfo("+201000000008"))
	assert.ErrorIs(t, err, store.ErrCartEmpty)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 8, 1)
	require.NoError(t, err)
	order, err := s.SubmitOrder(token, "", customerInfo("+201000000009"))
	require.NoError(t, err)

	_, err = s.UpdateOrderStatus(order.ID, "delivered", "", "")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	updated, err := s.UpdateOrderStatus(order.ID, models.OrderStatusShipped, "Bosta", "BST-1001")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	assert.Equal(t, "Bosta", updated.ShippingCompany)
	assert.Equal(t, "BST-1001", updated.TrackingNumber)

	_, err = s.UpdateOrderStatus("MRA-000000", models.OrderStatusCompleted, "", "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStockFloorsAtZero(t *testing.T) {
	s := newStore(t)

	token := s.NewCartToken()
	_, err := s.AddToCart(token, 8, 20) // more than the seeded stock of 15
	require.NoError(t, err)
	_, err = s.SubmitOrder(token, "", customerInfo("+201000000010"))
	require.NoError(t, err)

	p, err := s.GetProduct(8)
	require.NoError(t, err)
	assert.Zero(t, p.Stock)
}
