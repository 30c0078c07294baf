package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/store"
	"github.com/example/morascent/internal/utils"
)

// AdminHandler manages back-office accounts, the audit trail, dashboard
// stats and the backup export.
type AdminHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(s *store.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{store: s, cfg: cfg}
}

// ListAdminUsers returns all back-office accounts (super admin).
func (h *AdminHandler) ListAdminUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListAdminUsers()})
}

type adminUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// CreateAdminUser adds a back-office account (super admin).
func (h *AdminHandler) CreateAdminUser(c *fiber.Ctx) error {
	var req adminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	admin, err := h.store.CreateAdminUser(req.Name, req.Email, req.Role, req.Password)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created admin user "+admin.Email)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": admin})
}

// UpdateAdminUser edits a back-office account (super admin).
func (h *AdminHandler) UpdateAdminUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req adminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	admin, err := h.store.UpdateAdminUser(id, req.Name, req.Email, req.Role)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated admin user "+admin.Email)
	return c.JSON(fiber.Map{"success": true, "data": admin})
}

// DeleteAdminUser removes a back-office account (super admin).
func (h *AdminHandler) DeleteAdminUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.DeleteAdminUser(id); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted admin user "+c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ListActivity returns the audit trail, newest-first.
func (h *AdminHandler) ListActivity(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	return c.JSON(fiber.Map{"success": true, "data": h.store.ListActivity(pg.Limit)})
}

// Stats returns the dashboard summary.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.store.DashboardStats(h.cfg.LowStock)})
}

// Backup serializes the full session state and offers it as a JSON download.
// There is no import path; the export is a one-way snapshot.
func (h *AdminHandler) Backup(c *fiber.Ctx) error {
	snapshot := h.store.Snapshot()

	filename := fmt.Sprintf("morascent-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	logAdminAction(h.store, c, "exported backup")
	return c.JSON(snapshot)
}
