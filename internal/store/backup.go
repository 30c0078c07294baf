package store

import (
	"time"

	"github.com/example/morascent/internal/models"
)

// Backup is the exportable snapshot of the full session state. Its structure
// matches the data model field-for-field; there is no import path.
type Backup struct {
	ExportedAt        time.Time                `json:"exported_at"`
	Products          []models.Product         `json:"products"`
	Categories        []models.Category        `json:"categories"`
	Orders            []models.Order           `json:"orders"`
	Customers         []models.Customer        `json:"customers"`
	Coupons           []models.Coupon          `json:"coupons"`
	ShippingZones     []models.ShippingZone    `json:"shipping_zones"`
	ShippingCompanies []models.ShippingCompany `json:"shipping_companies"`
	Reviews           []models.Review          `json:"reviews"`
	Settings          models.StoreSettings     `json:"settings"`
	AdminUsers        []models.AdminUser       `json:"admin_users"`
}

// Snapshot captures the current session state for the backup download.
func (s *Store) Snapshot() Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Backup{
		ExportedAt:        time.Now(),
		Products:          append([]models.Product(nil), s.products...),
		Categories:        append([]models.Category(nil), s.categories...),
		Orders:            append([]models.Order(nil), s.orders...),
		Customers:         append([]models.Customer(nil), s.customers...),
		Coupons:           append([]models.Coupon(nil), s.coupons...),
		ShippingZones:     append([]models.ShippingZone(nil), s.zones...),
		ShippingCompanies: append([]models.ShippingCompany(nil), s.companies...),
		Reviews:           append([]models.Review(nil), s.reviews...),
		Settings:          s.settings,
		AdminUsers:        append([]models.AdminUser(nil), s.admins...),
	}
}

// Stats summarises the dashboard numbers.
type Stats struct {
	TotalRevenue   float64          `json:"total_revenue"`
	TotalOrders    int              `json:"total_orders"`
	OrdersByStatus map[string]int   `json:"orders_by_status"`
	CustomerCount  int              `json:"customer_count"`
	LowStock       []models.Product `json:"low_stock"`
}

// DashboardStats computes the admin dashboard summary. Revenue counts every
// non-cancelled order; products at or below the threshold are flagged.
func (s *Store) DashboardStats(lowStockThreshold int) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalOrders:    len(s.orders),
		OrdersByStatus: make(map[string]int, len(models.OrderStatuses)),
		CustomerCount:  len(s.customers),
	}
	for _, o := range s.orders {
		stats.OrdersByStatus[o.Status]++
		if o.Status != models.OrderStatusCancelled {
			stats.TotalRevenue += o.Total
		}
	}
	for _, p := range s.products {
		if p.Stock <= lowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
	}
	return stats
}
