package store

import (
	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/seed"
)

// ListCategories returns the category list, catch-all entry first.
func (s *Store) ListCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// DefaultCategory is the explicit default-selection policy for new products:
// the first real category after the catch-all entry.
func (s *Store) DefaultCategory() (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultCategory()
}

func (s *Store) defaultCategory() (models.Category, bool) {
	for _, c := range s.categories {
		if c.Ar != seed.AllCategory.Ar {
			return c, true
		}
	}
	return models.Category{}, false
}

// AddCategory appends a new bilingual category. Both names are required and
// the Arabic name must be unique.
func (s *Store) AddCategory(c models.Category) error {
	if c.Ar == "" || c.En == "" {
		return ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Ar == c.Ar {
			return ErrDuplicateCategory
		}
	}
	s.categories = append(s.categories, c)
	return nil
}

// RemoveCategory drops a category by its Arabic name. The catch-all entry is
// protected. Products keep their category strings; reassignment is an admin
// concern.
func (s *Store) RemoveCategory(arName string) error {
	if arName == seed.AllCategory.Ar {
		return ErrCategoryProtected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].Ar == arName {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
