package store

import (
	"time"

	"github.com/example/morascent/internal/models"
)

// ListReviews returns the reviews for a product, newest-first.
func (s *Store) ListReviews(productID int64) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].ProductID == productID {
			out = append(out, s.reviews[i])
		}
	}
	return out
}

// AddReview attaches a shopper review to an existing product. Ratings are
// clamped to 1..5.
func (s *Store) AddReview(r models.Review) (models.Review, error) {
	if r.UserName == "" || r.Comment == "" {
		return models.Review{}, ErrMissingFields
	}
	if r.Rating < 1 {
		r.Rating = 1
	}
	if r.Rating > 5 {
		r.Rating = 5
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findProduct(r.ProductID); err != nil {
		return models.Review{}, err
	}

	r.ID = s.nextReviewID
	s.nextReviewID++
	r.Date = time.Now().Format("2006-01-02")
	s.reviews = append(s.reviews, r)
	return r, nil
}
