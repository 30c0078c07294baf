package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/services"
	"github.com/example/morascent/internal/store"
)

// ChatHandler forwards storefront chat messages to the assistant service.
type ChatHandler struct {
	store     *store.Store
	assistant *services.AssistantService
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(s *store.Store, assistant *services.AssistantService) *ChatHandler {
	return &ChatHandler{store: s, assistant: assistant}
}

type chatRequest struct {
	Lang     string                 `json:"lang"`
	Messages []services.ChatMessage `json:"messages"`
	Message  string                 `json:"message"`
}

// Send forwards the transcript plus the latest message and returns the
// reply. Failures never surface as errors; the widget always gets text back.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}
	if req.Lang != "en" {
		req.Lang = "ar"
	}

	settings := h.store.Settings()
	if !settings.AssistantEnabled {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"reply": services.Apology(req.Lang)},
		})
	}

	reply := h.assistant.Reply(req.Lang, req.Messages, req.Message, settings, h.store.ListProducts("", ""))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"reply": reply},
	})
}
