package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/utils"
)

const (
	userContextKey = "currentUserID"
	roleContextKey = "currentRole"
)

// AuthMiddleware validates JWT tokens and loads the token subject and role
// into context. Shopper tokens carry no role.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, role, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, userID)
		c.Locals(roleContextKey, role)
		return c.Next()
	}
}

// RequireAdmin gates a route to back-office tokens. Runs after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := GetCurrentRole(c)
		if !ok || !models.ValidRole(role) {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates a route to super admin tokens.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := GetCurrentRole(c)
		if !ok || role != models.RoleSuperAdmin {
			return fiber.NewError(fiber.StatusForbidden, "super admin access required")
		}
		return c.Next()
	}
}

// GetCurrentUserID extracts the token subject from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// GetCurrentRole extracts the token role from context.
func GetCurrentRole(c *fiber.Ctx) (string, bool) {
	value := c.Locals(roleContextKey)
	if value == nil {
		return "", false
	}

	if role, ok := value.(string); ok && role != "" {
		return role, true
	}

	return "", false
}
