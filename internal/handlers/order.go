package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/middleware"
	"github.com/example/morascent/internal/store"
	"github.com/example/morascent/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	store *store.Store
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// MyOrders returns the authenticated shopper's orders, newest-first.
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"success": true, "data": h.store.ListOrdersByEmail(user.Email)})
}

// ListOrders returns all orders (admin), newest-first, with an optional
// status filter and pagination.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders := h.store.ListOrders(c.Query("status"))

	pg := utils.ParsePagination(c)
	total := len(orders)
	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order by its code (admin).
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.store.GetOrder(c.Params("id"))
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

type statusRequest struct {
	Status          string `json:"status"`
	ShippingCompany string `json:"shipping_company"`
	TrackingNumber  string `json:"tracking_number"`
}

// UpdateStatus moves an order through the status set (admin), optionally
// attaching carrier and tracking details.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.store.UpdateOrderStatus(c.Params("id"), req.Status, req.ShippingCompany, req.TrackingNumber)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "moved order "+order.ID+" to "+order.Status)
	return c.JSON(fiber.Map{"success": true, "data": order})
}
