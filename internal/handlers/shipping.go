package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/store"
)

// ShippingHandler manages shipping zones and carriers.
type ShippingHandler struct {
	store *store.Store
}

// NewShippingHandler constructs ShippingHandler.
func NewShippingHandler(s *store.Store) *ShippingHandler {
	return &ShippingHandler{store: s}
}

// ListCities returns the selectable delivery destinations for the checkout
// form.
func (h *ShippingHandler) ListCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"countries": h.store.Countries(),
			"cities":    h.store.Cities(),
		},
	})
}

// ListZones returns every shipping zone (admin).
func (h *ShippingHandler) ListZones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListShippingZones()})
}

// CreateZone stores a new per-city rate (admin).
func (h *ShippingHandler) CreateZone(c *fiber.Ctx) error {
	var payload models.ShippingZone
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	zone, err := h.store.CreateShippingZone(payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created shipping zone "+zone.City)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": zone})
}

// UpdateZone edits a zone (admin).
func (h *ShippingHandler) UpdateZone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.ShippingZone
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	zone, err := h.store.UpdateShippingZone(id, payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated shipping zone "+zone.City)
	return c.JSON(fiber.Map{"success": true, "data": zone})
}

// DeleteZone removes a zone (admin).
func (h *ShippingHandler) DeleteZone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.DeleteShippingZone(id); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted shipping zone "+c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCompanies returns the carrier list (admin).
func (h *ShippingHandler) ListCompanies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListShippingCompanies()})
}

// CreateCompany stores a new carrier (admin).
func (h *ShippingHandler) CreateCompany(c *fiber.Ctx) error {
	var payload models.ShippingCompany
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	company, err := h.store.CreateShippingCompany(payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created carrier "+company.Name)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": company})
}

// UpdateCompany edits a carrier (admin).
func (h *ShippingHandler) UpdateCompany(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.ShippingCompany
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	company, err := h.store.UpdateShippingCompany(id, payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated carrier "+company.Name)
	return c.JSON(fiber.Map{"success": true, "data": company})
}

// DeleteCompany removes a carrier (admin).
func (h *ShippingHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.DeleteShippingCompany(id); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted carrier "+c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
