package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/middleware"
	"github.com/example/morascent/internal/store"
)

// mapStoreError converts store boundary errors into user-facing fiber errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	case errors.Is(err, store.ErrMissingFields):
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	case errors.Is(err, store.ErrCartEmpty):
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	case errors.Is(err, store.ErrTransactionIDRequired):
		return fiber.NewError(fiber.StatusBadRequest, "transaction id is required for instapay")
	case errors.Is(err, store.ErrCustomerBlocked):
		return fiber.NewError(fiber.StatusForbidden, "orders from this customer are blocked")
	case errors.Is(err, store.ErrInvalidStatus):
		return fiber.NewError(fiber.StatusBadRequest, "invalid order status")
	case errors.Is(err, store.ErrDuplicateCategory):
		return fiber.NewError(fiber.StatusConflict, "category already exists")
	case errors.Is(err, store.ErrCategoryProtected):
		return fiber.NewError(fiber.StatusBadRequest, "category cannot be removed")
	case errors.Is(err, store.ErrDuplicateEmail):
		return fiber.NewError(fiber.StatusConflict, "email already in use")
	case errors.Is(err, store.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, store.ErrInvalidRole):
		return fiber.NewError(fiber.StatusBadRequest, "invalid role")
	case errors.Is(err, store.ErrLastSuperAdmin):
		return fiber.NewError(fiber.StatusBadRequest, "cannot remove the last super admin")
	default:
		return err
	}
}

// logAdminAction appends an audit-trail entry attributed to the calling
// back-office account. Unknown callers are skipped silently.
func logAdminAction(s *store.Store, c *fiber.Ctx, action string) {
	adminID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return
	}
	admin, err := s.GetAdminUser(adminID)
	if err != nil {
		return
	}
	s.LogActivity(admin.ID.String(), admin.Name, action, c.IP())
}
