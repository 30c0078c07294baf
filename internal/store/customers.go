package store

import (
	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
)

func (s *Store) findCustomerByPhone(phone string) *models.Customer {
	for i := range s.customers {
		if s.customers[i].Phone == phone {
			return &s.customers[i]
		}
	}
	return nil
}

// upsertCustomer folds an order into the aggregate keyed by phone number.
// Callers hold the write lock.
func (s *Store) upsertCustomer(info models.CustomerInfo, total float64) {
	if existing := s.findCustomerByPhone(info.Phone); existing != nil {
		existing.OrderCount++
		existing.TotalSpent += total
		existing.Name = info.Name
		if info.Email != "" {
			existing.Email = info.Email
		}
		existing.Touch()
		return
	}

	s.customers = append(s.customers, models.Customer{
		BaseModel:  models.NewBase(),
		Name:       info.Name,
		Email:      info.Email,
		Phone:      info.Phone,
		OrderCount: 1,
		TotalSpent: total,
	})
}

// ListCustomers returns the customer aggregates for the admin table.
func (s *Store) ListCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// GetCustomer returns a single customer record.
func (s *Store) GetCustomer(id uuid.UUID) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// UpdateCustomer edits the independently managed fields: notes and the block
// flag. Aggregated counters are owned by order submission.
func (s *Store) UpdateCustomer(id uuid.UUID, notes string, isBlocked bool) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Notes = notes
			s.customers[i].IsBlocked = isBlocked
			s.customers[i].Touch()
			return s.customers[i], nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// IsBlocked reports whether the phone number belongs to a blocked customer.
func (s *Store) IsBlocked(phone string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.findCustomerByPhone(phone)
	return c != nil && c.IsBlocked
}
