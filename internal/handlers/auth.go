package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/store"
	"github.com/example/morascent/internal/utils"
)

// AuthHandler bundles dependencies for session endpoints.
type AuthHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: s, cfg: cfg}
}

type loginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login attaches a shopper identity to the session. Any email/password pair
// is accepted; the fabricated user only attributes reviews and order history.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.store.FabricateUser(req.Name, req.Email)
	if err != nil {
		return mapStoreError(err)
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, "", h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin authenticates a back-office account and issues a role token.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	admin, err := h.store.AuthenticateAdmin(req.Email, req.Password)
	if err != nil {
		return mapStoreError(err)
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, admin.ID, admin.Role, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	h.store.LogActivity(admin.ID.String(), admin.Name, "logged in", c.IP())

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
		"token": token,
	})
}
