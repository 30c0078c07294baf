package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/morascent/internal/middleware"
	"github.com/example/morascent/internal/models"
	"github.com/example/morascent/internal/store"
)

// ProductHandler manages catalog product endpoints.
type ProductHandler struct {
	store *store.Store
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

func parseProductID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// ListProducts returns the catalog, filtered by the category and search query
// params the storefront grid uses.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products := h.store.ListProducts(c.Query("category"), c.Query("search"))
	return c.JSON(fiber.Map{"success": true, "data": products})
}

// GetProduct returns a single product by ID.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// CreateProduct persists a new product (admin).
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.store.CreateProduct(payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "created product "+product.NameEn)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct updates an existing product (admin).
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.store.UpdateProduct(id, payload)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "updated product "+product.NameEn)
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product (admin).
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteProduct(id); err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "deleted product "+c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

type stockRequest struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a stock delta (admin stock tab).
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req stockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.store.AdjustStock(id, req.Delta)
	if err != nil {
		return mapStoreError(err)
	}

	logAdminAction(h.store, c, "adjusted stock for "+product.NameEn)
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListReviews returns a product's reviews.
func (h *ProductHandler) ListReviews(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": h.store.ListReviews(id)})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview attaches a review from the authenticated shopper.
func (h *ProductHandler) CreateReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.store.AddReview(models.Review{
		ProductID: id,
		UserName:  user.Name,
		UserEmail: user.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return mapStoreError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": review})
}
