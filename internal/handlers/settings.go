package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/store"
)

// SettingsHandler manages the storefront settings singleton.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// GetSettings returns the public storefront settings.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	s := h.store.Settings()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"name":             s.Name,
			"logo":             s.Logo,
			"email":            s.Email,
			"whatsapp":         s.WhatsApp,
			"currency":         s.Currency,
			"default_language": s.DefaultLanguage,
			"policy":           s.Policy,
		},
	})
}

// GetAdminSettings returns the full settings record (admin).
func (h *SettingsHandler) GetAdminSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.Settings()})
}

// UpdateSettings replaces the settings record (admin).
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var payload models.StoreSettings
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := h.store.UpdateSettings(payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated store settings")
	return c.JSON(fiber.Map{"success": true, "data": settings})
}
