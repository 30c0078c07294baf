package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/store"
)

// CatalogHandler manages category endpoints.
type CatalogHandler struct {
	store *store.Store
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(s *store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// ListCategories returns the bilingual category list.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListCategories()})
}

// CreateCategory appends a new category (admin).
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.store.AddCategory(payload); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created category "+payload.En)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// DeleteCategory removes the category named by the ar query param (admin).
// The name travels as a query value because it is Arabic text.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	name := c.Query("ar")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ar query parameter is required")
	}
	if err := h.store.RemoveCategory(name); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted category "+name)
	return c.SendStatus(fiber.StatusNoContent)
}
