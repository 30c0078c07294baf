package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/utils"
)

// ListAdminUsers returns all back-office accounts.
func (s *Store) ListAdminUsers() []models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AdminUser(nil), s.admins...)
}

// CreateAdminUser stores a new back-office account with a hashed password.
func (s *Store) CreateAdminUser(name, email, role, password string) (models.AdminUser, error) {
	if name == "" || email == "" || password == "" {
		return models.AdminUser{}, ErrMissingFields
	}
	if !models.ValidRole(role) {
		return models.AdminUser{}, ErrInvalidRole
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.AdminUser{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return models.AdminUser{}, ErrDuplicateEmail
		}
	}

	admin := models.AdminUser{
		BaseModel:    models.NewBase(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}
	s.admins = append(s.admins, admin)
	return admin, nil
}

// UpdateAdminUser edits name, email and role. Demoting or re-roling the last
// super admin is refused.
func (s *Store) UpdateAdminUser(id uuid.UUID, name, email, role string) (models.AdminUser, error) {
	if !models.ValidRole(role) {
		return models.AdminUser{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].ID != id {
			continue
		}
		if s.admins[i].Role == models.RoleSuperAdmin && role != models.RoleSuperAdmin &&
			s.countSuperAdmins() == 1 {
			return models.AdminUser{}, ErrLastSuperAdmin
		}
		if name != "" {
			s.admins[i].Name = name
		}
		if email != "" {
			s.admins[i].Email = email
		}
		s.admins[i].Role = role
		s.admins[i].Touch()
		return s.admins[i], nil
	}
	return models.AdminUser{}, ErrNotFound
}

// DeleteAdminUser removes an account, refusing to delete the last super admin.
func (s *Store) DeleteAdminUser(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].ID != id {
			continue
		}
		if s.admins[i].Role == models.RoleSuperAdmin && s.countSuperAdmins() == 1 {
			return ErrLastSuperAdmin
		}
		s.admins = append(s.admins[:i], s.admins[i+1:]...)
		return nil
	}
	return ErrNotFound
}

func (s *Store) countSuperAdmins() int {
	var n int
	for _, a := range s.admins {
		if a.Role == models.RoleSuperAdmin {
			n++
		}
	}
	return n
}

// AuthenticateAdmin verifies back-office credentials and records the login
// time.
func (s *Store) AuthenticateAdmin(email, password string) (models.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if !strings.EqualFold(s.admins[i].Email, email) {
			continue
		}
		if !utils.CheckPassword(s.admins[i].PasswordHash, password) {
			return models.AdminUser{}, ErrInvalidCredentials
		}
		now := time.Now()
		s.admins[i].LastLogin = &now
		return s.admins[i], nil
	}
	return models.AdminUser{}, ErrInvalidCredentials
}

// GetAdminUser returns a back-office account by id.
func (s *Store) GetAdminUser(id uuid.UUID) (models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return models.AdminUser{}, ErrNotFound
}
