package store

import (
	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
)

// ListShippingZones returns every zone for the admin table.
func (s *Store) ListShippingZones() []models.ShippingZone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ShippingZone(nil), s.zones...)
}

// CreateShippingZone stores a new per-city rate.
func (s *Store) CreateShippingZone(z models.ShippingZone) (models.ShippingZone, error) {
	if z.City == "" || z.Rate < 0 {
		return models.ShippingZone{}, ErrMissingFields
	}

	z.BaseModel = models.NewBase()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = append(s.zones, z)
	return z, nil
}

// UpdateShippingZone replaces the editable fields of a zone.
func (s *Store) UpdateShippingZone(id uuid.UUID, z models.ShippingZone) (models.ShippingZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.zones {
		if s.zones[i].ID == id {
			existing := &s.zones[i]
			existing.City = z.City
			existing.Rate = z.Rate
			existing.DeliveryTime = z.DeliveryTime
			existing.IsActive = z.IsActive
			existing.Touch()
			return *existing, nil
		}
	}
	return models.ShippingZone{}, ErrNotFound
}

// DeleteShippingZone removes a zone; deliveries to its city become free until
// a replacement is added.
func (s *Store) DeleteShippingZone(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.zones {
		if s.zones[i].ID == id {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListShippingCompanies returns the carrier list.
func (s *Store) ListShippingCompanies() []models.ShippingCompany {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ShippingCompany(nil), s.companies...)
}

// CreateShippingCompany stores a new carrier.
func (s *Store) CreateShippingCompany(c models.ShippingCompany) (models.ShippingCompany, error) {
	if c.Name == "" {
		return models.ShippingCompany{}, ErrMissingFields
	}

	c.BaseModel = models.NewBase()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = append(s.companies, c)
	return c, nil
}

// UpdateShippingCompany replaces the editable fields of a carrier.
func (s *Store) UpdateShippingCompany(id uuid.UUID, c models.ShippingCompany) (models.ShippingCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == id {
			existing := &s.companies[i]
			existing.Name = c.Name
			existing.Contact = c.Contact
			existing.IsActive = c.IsActive
			existing.Touch()
			return *existing, nil
		}
	}
	return models.ShippingCompany{}, ErrNotFound
}

// DeleteShippingCompany removes a carrier.
func (s *Store) DeleteShippingCompany(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
