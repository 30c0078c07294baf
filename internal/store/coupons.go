package store

import (
	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
)

// ListCoupons returns every coupon, including inactive ones, for the admin
// table.
func (s *Store) ListCoupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Coupon(nil), s.coupons...)
}

// CreateCoupon validates and stores a new coupon.
func (s *Store) CreateCoupon(c models.Coupon) (models.Coupon, error) {
	if c.Code == "" || c.DiscountValue < 0 || c.UsageLimit <= 0 {
		return models.Coupon{}, ErrMissingFields
	}
	if c.DiscountType != models.DiscountPercentage && c.DiscountType != models.DiscountFixed {
		return models.Coupon{}, ErrMissingFields
	}

	c.BaseModel = models.NewBase()
	c.UsageCount = 0

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = append(s.coupons, c)
	return c, nil
}

// UpdateCoupon replaces the editable fields of a coupon. The usage counter is
// owned by order submission and never moves here.
func (s *Store) UpdateCoupon(id uuid.UUID, c models.Coupon) (models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID == id {
			existing := &s.coupons[i]
			existing.Code = c.Code
			existing.DiscountType = c.DiscountType
			existing.DiscountValue = c.DiscountValue
			existing.MinOrderValue = c.MinOrderValue
			existing.ExpiryDate = c.ExpiryDate
			existing.UsageLimit = c.UsageLimit
			existing.IsActive = c.IsActive
			existing.Touch()
			return *existing, nil
		}
	}
	return models.Coupon{}, ErrNotFound
}

// DeleteCoupon removes a coupon. Orders that already recorded its code keep
// it as plain text.
func (s *Store) DeleteCoupon(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coupons {
		if s.coupons[i].ID == id {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
