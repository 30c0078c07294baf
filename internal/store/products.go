package store

import (
	"strings"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/seed"
)

// ListProducts returns the catalog, optionally filtered by category name
// (Arabic or English, the catch-all matches everything) and a case-insensitive
// search over both product names.
func (s *Store) ListProducts(category, search string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != seed.AllCategory.Ar && category != seed.AllCategory.En &&
			p.Category != category && p.CategoryEn != category {
			continue
		}
		if search != "" {
			q := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.NameEn), q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findProduct(id)
}

func (s *Store) findProduct(id int64) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// CreateProduct validates and appends a new product, assigning its id.
// Name, a non-negative price and an image are required, matching the admin
// form's completeness check.
func (s *Store) CreateProduct(p models.Product) (models.Product, error) {
	if p.Name == "" || p.Price <= 0 || p.Image == "" {
		return models.Product{}, ErrMissingFields
	}
	if p.Stock < 0 {
		p.Stock = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Category == "" {
		if def, ok := s.defaultCategory(); ok {
			p.Category = def.Ar
			p.CategoryEn = def.En
		}
	}

	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct replaces the stored product with the given id.
func (s *Store) UpdateProduct(id int64, p models.Product) (models.Product, error) {
	if p.Name == "" || p.Price <= 0 || p.Image == "" {
		return models.Product{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			s.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// DeleteProduct removes a product from the catalog. Existing cart snapshots
// and placed orders keep their copies.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AdjustStock applies a delta to a product's stock count, floored at zero.
func (s *Store) AdjustStock(id int64, delta int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			stock := s.products[i].Stock + delta
			if stock < 0 {
				stock = 0
			}
			s.products[i].Stock = stock
			return s.products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}
