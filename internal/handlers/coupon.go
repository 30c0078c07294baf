package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/store"
)

// CouponHandler manages coupon administration.
type CouponHandler struct {
	store *store.Store
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(s *store.Store) *CouponHandler {
	return &CouponHandler{store: s}
}

// ListCoupons returns every coupon, including inactive ones.
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListCoupons()})
}

// CreateCoupon stores a new coupon.
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var payload models.Coupon
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	coupon, err := h.store.CreateCoupon(payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created coupon "+coupon.Code)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": coupon})
}

// UpdateCoupon edits a coupon's terms.
func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.Coupon
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	coupon, err := h.store.UpdateCoupon(id, payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated coupon "+coupon.Code)
	return c.JSON(fiber.Map{"success": true, "data": coupon})
}

// DeleteCoupon removes a coupon.
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.DeleteCoupon(id); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted coupon "+c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
