package store

import "github.com/example/morascent/internal/models"

// Settings returns the store-wide configuration.
func (s *Store) Settings() models.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the store-wide configuration. The store name and
// currency are required; everything else may be blanked.
func (s *Store) UpdateSettings(settings models.StoreSettings) (models.StoreSettings, error) {
	if settings.Name == "" || settings.Currency == "" {
		return models.StoreSettings{}, ErrMissingFields
	}
	if settings.DefaultLanguage != "ar" && settings.DefaultLanguage != "en" {
		settings.DefaultLanguage = "ar"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings, nil
}
