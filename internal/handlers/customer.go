package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/morascent/internal/store"
)

// CustomerHandler manages the admin customer table.
type CustomerHandler struct {
	store *store.Store
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(s *store.Store) *CustomerHandler {
	return &CustomerHandler{store: s}
}

// ListCustomers returns the aggregated customer records.
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListCustomers()})
}

// GetCustomer returns a single customer record.
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	customer, err := h.store.GetCustomer(id)
	if err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"customer": customer,
			"orders":   h.store.ListOrdersByPhone(customer.Phone),
		},
	})
}

type customerUpdateRequest struct {
	Notes     string `json:"notes"`
	IsBlocked bool   `json:"is_blocked"`
}

// UpdateCustomer edits notes and the block flag. A blocked customer cannot
// place further orders.
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req customerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	customer, err := h.store.UpdateCustomer(id, req.Notes, req.IsBlocked)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated customer "+customer.Phone)
	return c.JSON(fiber.Map{"success": true, "data": customer})
}
