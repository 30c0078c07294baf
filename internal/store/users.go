package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
)

// FabricateUser attaches a shopper identity to the session. Any credentials
// are accepted; the record only serves to attribute reviews and order-history
// lookups. Logging in again with a known email returns the same record.
func (s *Store) FabricateUser(name, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrMissingFields
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			s.users[i].Name = name
			return s.users[i], nil
		}
	}

	user := models.User{BaseModel: models.NewBase(), Name: name, Email: email}
	s.users = append(s.users, user)
	return user, nil
}

// GetUser returns a shopper session identity by id.
func (s *Store) GetUser(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}
