package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-marketplace/internal/api/dto"
	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/domain"
	"github.com/spec-kit/class-marketplace/internal/service"
	apperrors "github.com/spec-kit/class-marketplace/pkg/util"
)

// CartsHandler exposes the cart routes.
type CartsHandler struct {
	carts *service.CartService
}

// NewCartsHandler constructs handler.
func NewCartsHandler(carts *service.CartService) *CartsHandler {
	return &CartsHandler{carts: carts}
}

// View handles GET /carts?email= (authenticated, owner-only).
func (h *CartsHandler) View(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	items, err := h.carts.ViewCart(c.Context(), c.Query("email"), principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCartItemResponses(items)})
}

// Add handles POST /carts.
func (h *CartsHandler) Add(c *fiber.Ctx) error {
	var req dto.CartItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.CartItem{
		OwnerEmail: req.OwnerEmail,
		ClassID:    req.ClassID,
		ClassName:  req.ClassName,
		Price:      req.Price,
	}
	if err := h.carts.AddItem(c.Context(), item); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": item.ID}})
}

// Remove handles DELETE /carts/:id.
func (h *CartsHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(http.StatusBadRequest, "cart item id required")
	}

	if err := h.carts.RemoveItem(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "cart item removed"})
}
