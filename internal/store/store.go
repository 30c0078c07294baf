// Package store owns all session state: catalog, carts, coupons, shipping
// tables, orders, customers, reviews, settings, back-office accounts and the
// activity log. Nothing outside this package mutates that state; every
// invariant is enforced behind the one lock. State lives for the lifetime of
// the process, matching the one-browser-session model of the storefront.
package store

import (
	"sync"

	"github.com/example/morascent/internal/cart"
	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/seed"
)

// Store is the single application-state controller.
type Store struct {
	mu sync.RWMutex

	products      []models.Product
	nextProductID int64

	categories []models.Category
	coupons    []models.Coupon
	zones      []models.ShippingZone
	companies  []models.ShippingCompany

	carts map[string]*cart.Cart

	orders    []models.Order
	customers []models.Customer

	reviews      []models.Review
	nextReviewID int64

	settings models.StoreSettings
	users    []models.User
	admins   []models.AdminUser
	activity []models.ActivityLog

	countries []string
	cities    []string
}

// New builds a store seeded with the initial session state. adminPassword is
// the password for the built-in super admin account.
func New(adminPassword string) (*Store, error) {
	admins, err := seed.AdminUsers(adminPassword)
	if err != nil {
		return nil, err
	}

	s := &Store{
		products:   seed.Products(),
		categories: seed.Categories(),
		coupons:    seed.Coupons(),
		zones:      seed.ShippingZones(),
		companies:  seed.ShippingCompanies(),
		carts:      make(map[string]*cart.Cart),
		settings:   seed.Settings(),
		admins:     admins,
		countries:  seed.Countries,
		cities:     seed.EgyptCities,
	}

	for _, p := range s.products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
	s.nextReviewID = 1
	return s, nil
}

// Countries returns the checkout country list.
func (s *Store) Countries() []string {
	return append([]string(nil), s.countries...)
}

// Cities returns the selectable delivery destinations.
func (s *Store) Cities() []string {
	return append([]string(nil), s.cities...)
}
